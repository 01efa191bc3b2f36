package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/passione-app/passione-backend/models"
	"gorm.io/gorm"
)

// ErrEmptyCart rejects order placement when the session's cart has no items.
var ErrEmptyCart = errors.New("cart is empty")

// OrderService turns carts into orders and manages the order lifecycle.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder places an order from the session's cart. The order freezes the
// cart total and the table number; inside the same transaction every cart
// item is copied into an order item and then removed from the cart, so no
// caller ever observes an order alongside a non-empty source cart.
func (s *OrderService) CreateOrder(sessionID string, comment *string) (*models.Order, error) {
	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := s.db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		return nil, err
	}

	var table models.Table
	if err := s.db.First(&table, "id = ?", session.TableID).Error; err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := s.db.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for i := range items {
		total += items[i].Price * float64(items[i].Quantity)
	}

	now := time.Now()
	order := models.Order{
		ID:           uuid.NewString(),
		RestaurantID: session.RestaurantID,
		TableID:      session.TableID,
		SessionID:    sessionID,
		TableNumber:  table.TableNumber,
		Status:       models.OrderStatusPending,
		TotalAmount:  total,
		Comment:      comment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tx := s.db.Begin()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		orderItem := models.OrderItem{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			DishID:   items[i].DishID,
			Quantity: items[i].Quantity,
			Price:    items[i].Price,
			Comment:  items[i].Comment,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to copy cart item: %w", err)
		}
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetOrder(order.ID)
}

// GetOrder loads the order with its items, each enriched with the dish's
// current state. Only the item's own price and quantity are frozen.
func (s *OrderService) GetOrder(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").First(&order, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}

	for i := range order.Items {
		var dish models.Dish
		if err := s.db.First(&dish, "id = ?", order.Items[i].DishID).Error; err == nil {
			view := dish.Localized(models.LanguageRU)
			order.Items[i].Dish = &view
		}
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return &order, nil
}

// ListOrders filters by optional status and restaurant (AND-combined) and
// returns the newest orders first.
func (s *OrderService) ListOrders(status *models.OrderStatus, restaurantID *string) ([]models.Order, error) {
	query := s.db.Preload("Items").Order("created_at desc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if restaurantID != nil {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateStatus overwrites the status unconditionally. Any status is reachable
// from any status; only updated_at records that something happened.
func (s *OrderService) UpdateStatus(orderID string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return s.GetOrder(orderID)
}
