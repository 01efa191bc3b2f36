package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/passione-app/passione-backend/models"
	"github.com/passione-app/passione-backend/utils"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetTableByQR -> resolve a table from the payload encoded in its QR code
func (tc *TableController) GetTableByQR(c *gin.Context) {
	qrCode := c.Param("qr_code")

	var table models.Table
	if err := tc.DB.Where("qr_code = ?", qrCode).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	c.JSON(http.StatusOK, table)
}

// GetTableByID -> table detail
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")
	if err := requireUUID("table_id", tableID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, "id = ?", tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	c.JSON(http.StatusOK, table)
}

// GetTableQRImage -> render the table's QR payload as a printable PNG
func (tc *TableController) GetTableQRImage(c *gin.Context) {
	tableID := c.Param("table_id")
	if err := requireUUID("table_id", tableID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, "id = ?", tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	png, err := qrcode.Encode(table.QRCode, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
