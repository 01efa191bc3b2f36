package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/passione-app/passione-backend/models"
	"github.com/passione-app/passione-backend/utils"
	"gorm.io/gorm"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// CreateSession -> open a visitor session after a QR scan. The session and
// its empty cart are created in one transaction so a session without a cart
// is never observable.
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req struct {
		TableID  string `json:"table_id" binding:"required"`
		DeviceID string `json:"device_id" binding:"required"`
		Language string `json:"language"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := requireUUID("table_id", req.TableID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := sc.DB.First(&table, "id = ?", req.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	session := models.Session{
		ID:           uuid.NewString(),
		SessionToken: uuid.NewString(),
		TableID:      table.ID,
		RestaurantID: table.RestaurantID,
		Language:     models.ParseLanguage(req.Language),
		DeviceID:     req.DeviceID,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	cart := models.Cart{
		ID:        uuid.NewString(),
		SessionID: session.ID,
	}

	tx := sc.DB.Begin()
	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Create(&cart).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New session %s opened at table %s (device=%s)", session.ID, table.TableNumber, req.DeviceID)
	c.JSON(http.StatusCreated, session)
}

// GetSession -> session detail
func (sc *SessionController) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := requireUUID("session_id", sessionID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var session models.Session
	if err := sc.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrSessionNotFound)
		return
	}

	c.JSON(http.StatusOK, session)
}
