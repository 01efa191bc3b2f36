package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/passione-app/passione-backend/models"
	"github.com/passione-app/passione-backend/services"
	"github.com/passione-app/passione-backend/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{svc: services.NewOrderService(db)}
}

// CreateOrder -> place an order from the session's cart. Any failure
// (missing session/cart/table or empty cart) is a 400 per the wire contract.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		SessionID string  `json:"session_id" binding:"required"`
		Comment   *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := requireUUID("session_id", req.SessionID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.svc.CreateOrder(req.SessionID, req.Comment)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrOrderRejected)
		return
	}

	utils.InfoLogger.Printf("Order %s placed for table %s (total=%.2f)", order.ID, order.TableNumber, order.TotalAmount)
	c.JSON(http.StatusCreated, order)
}

// GetAllOrders -> staff listing, optional status/restaurant filters, newest
// first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var status *models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := models.OrderStatus(raw)
		if !s.IsValid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown order status %q", raw))
			return
		}
		status = &s
	}

	var restaurantID *string
	if raw := c.Query("restaurant_id"); raw != "" {
		if err := requireUUID("restaurant_id", raw); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		restaurantID = &raw
	}

	orders, err := oc.svc.ListOrders(status, restaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": orders,
		"pagination": gin.H{
			"page":  1,
			"limit": 100,
			"total": len(orders),
		},
	})
}

// GetOrderByID -> order detail with enriched items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")
	if err := requireUUID("order_id", orderID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.svc.GetOrder(orderID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrderStatus -> reduced status view for polling clients
func (oc *OrderController) GetOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	if err := requireUUID("order_id", orderID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.svc.GetOrder(orderID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	c.JSON(http.StatusOK, models.OrderStatusView{
		OrderID:   order.ID,
		Status:    order.Status,
		UpdatedAt: order.UpdatedAt,
	})
}

// UpdateOrderStatus -> staff sets a new status; no transition graph is
// enforced, any status can follow any other
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	if err := requireUUID("order_id", orderID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !req.Status.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown order status %q", req.Status))
		return
	}

	order, err := oc.svc.UpdateStatus(orderID, req.Status)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	utils.InfoLogger.Printf("Order %s status changed to %s", order.ID, order.Status)
	c.JSON(http.StatusOK, order)
}
