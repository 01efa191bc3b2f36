package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/passione-app/passione-backend/models"
	"gorm.io/gorm"
)

// CartService owns every cart mutation. Item prices are snapshotted from the
// dish at add time and never updated afterwards.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// GetCartBySession materializes the session's cart: items with a current
// dish view attached and the total recomputed from scratch.
func (s *CartService) GetCartBySession(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := s.db.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return nil, err
	}

	var total float64
	for i := range items {
		s.attachDish(&items[i])
		total += items[i].Price * float64(items[i].Quantity)
	}

	cart.Items = items
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	cart.TotalAmount = total
	return &cart, nil
}

// AddItem merges into an existing line for the same dish (quantity summed,
// comment overwritten only when a new one is supplied) or creates a new line
// snapshotting the dish's current price.
func (s *CartService) AddItem(sessionID, dishID string, quantity int, comment *string) (*models.CartItem, error) {
	var cart models.Cart
	if err := s.db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		return nil, err
	}

	var dish models.Dish
	if err := s.db.First(&dish, "id = ?", dishID).Error; err != nil {
		return nil, err
	}

	tx := s.db.Begin()

	var item models.CartItem
	err := tx.Where("cart_id = ? AND dish_id = ?", cart.ID, dishID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if comment != nil {
			item.Comment = comment
		}
		if err := tx.Save(&item).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to merge cart item: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			ID:       uuid.NewString(),
			CartID:   cart.ID,
			DishID:   dishID,
			Quantity: quantity,
			Price:    dish.Price,
			Comment:  comment,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
	default:
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem returns a single cart item without enrichment.
func (s *CartService) GetItem(itemID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies a partial update: nil means "field not given" and leaves
// the stored value untouched.
func (s *CartService) UpdateItem(itemID string, quantity *int, comment *string) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, err
	}

	if quantity != nil {
		item.Quantity = *quantity
	}
	if comment != nil {
		item.Comment = comment
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes the item, reporting not-found when it never existed.
func (s *CartService) DeleteItem(itemID string) error {
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return err
	}
	return s.db.Delete(&item).Error
}

func (s *CartService) attachDish(item *models.CartItem) {
	var dish models.Dish
	if err := s.db.First(&dish, "id = ?", item.DishID).Error; err == nil {
		view := dish.Localized(models.LanguageRU)
		item.Dish = &view
	}
}
