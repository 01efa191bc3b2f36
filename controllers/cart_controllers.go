package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/passione-app/passione-backend/services"
	"github.com/passione-app/passione-backend/utils"
	"gorm.io/gorm"
)

type CartController struct {
	svc *services.CartService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{svc: services.NewCartService(db)}
}

// GetCart -> materialized cart for a session, total recomputed on every read
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := requireUUID("session_id", sessionID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := cc.svc.GetCartBySession(sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCartNotFound)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddCartItem -> add a dish to the cart; repeated adds of the same dish merge
// into one line
func (cc *CartController) AddCartItem(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := requireUUID("session_id", sessionID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		DishID   string  `json:"dish_id" binding:"required"`
		Quantity int     `json:"quantity" binding:"required,min=1"`
		Comment  *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := requireUUID("dish_id", req.DishID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := cc.svc.AddItem(sessionID, req.DishID, req.Quantity, req.Comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrCartOrDishGone)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetCartItem -> single cart line
func (cc *CartController) GetCartItem(c *gin.Context) {
	itemID := c.Param("item_id")
	if err := requireUUID("item_id", itemID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := cc.svc.GetItem(itemID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCartItemNotFound)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateCartItem -> partial update; omitted fields keep their stored value
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	itemID := c.Param("item_id")
	if err := requireUUID("item_id", itemID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Quantity *int    `json:"quantity" binding:"omitempty,min=1"`
		Comment  *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := cc.svc.UpdateItem(itemID, req.Quantity, req.Comment)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCartItemNotFound)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteCartItem -> remove one line from the cart
func (cc *CartController) DeleteCartItem(c *gin.Context) {
	itemID := c.Param("item_id")
	if err := requireUUID("item_id", itemID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.svc.DeleteItem(itemID); err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCartItemNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}
