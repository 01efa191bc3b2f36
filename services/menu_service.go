package services

import (
	"github.com/passione-app/passione-backend/models"
	"gorm.io/gorm"
)

// MenuService assembles the localized menu tree and dish listings. It never
// mutates state.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// GetRestaurantMenu resolves the restaurant's active menu and projects it as
// sorted active categories with their available dishes.
func (s *MenuService) GetRestaurantMenu(restaurantID string, lang models.Language) (*models.MenuView, error) {
	var menu models.Menu
	err := s.db.Where("restaurant_id = ? AND is_active = ?", restaurantID, true).First(&menu).Error
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	err = s.db.Where("menu_id = ? AND is_active = ?", menu.ID, true).
		Order("sort_order asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	view := models.MenuView{
		ID:          menu.ID,
		Name:        menu.Name,
		Description: menu.Description,
		Categories:  make([]models.CategoryView, 0, len(categories)),
	}

	for i := range categories {
		cat := &categories[i]

		var dishes []models.Dish
		err = s.db.Where("category_id = ? AND is_available = ?", cat.ID, true).Find(&dishes).Error
		if err != nil {
			return nil, err
		}

		dishViews := make([]models.DishView, 0, len(dishes))
		for j := range dishes {
			dishViews = append(dishViews, dishes[j].Localized(lang))
		}

		view.Categories = append(view.Categories, models.CategoryView{
			ID:          cat.ID,
			Name:        cat.LocalizedName(lang),
			Description: cat.Description,
			SortOrder:   cat.SortOrder,
			Dishes:      dishViews,
		})
	}

	return &view, nil
}

// ListDishes returns every dish, optionally narrowed to one category.
func (s *MenuService) ListDishes(categoryID string, lang models.Language) ([]models.DishView, error) {
	query := s.db.Model(&models.Dish{})
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var dishes []models.Dish
	if err := query.Find(&dishes).Error; err != nil {
		return nil, err
	}

	views := make([]models.DishView, 0, len(dishes))
	for i := range dishes {
		views = append(views, dishes[i].Localized(lang))
	}
	return views, nil
}

// GetDish resolves a single dish in the requested language.
func (s *MenuService) GetDish(dishID string, lang models.Language) (*models.DishView, error) {
	var dish models.Dish
	if err := s.db.First(&dish, "id = ?", dishID).Error; err != nil {
		return nil, err
	}
	view := dish.Localized(lang)
	return &view, nil
}
