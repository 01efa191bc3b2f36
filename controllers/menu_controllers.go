package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/passione-app/passione-backend/models"
	"github.com/passione-app/passione-backend/services"
	"github.com/passione-app/passione-backend/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	svc *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{svc: services.NewMenuService(db)}
}

// GetRestaurantMenu -> localized menu tree for one restaurant
func (mc *MenuController) GetRestaurantMenu(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")
	if err := requireUUID("restaurant_id", restaurantID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	lang := models.ParseLanguage(c.Query("lang"))

	menu, err := mc.svc.GetRestaurantMenu(restaurantID, lang)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// GetDishes -> flat dish listing, optionally narrowed to one category
func (mc *MenuController) GetDishes(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID != "" {
		if err := requireUUID("category_id", categoryID); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}
	lang := models.ParseLanguage(c.Query("lang"))

	dishes, err := mc.svc.ListDishes(categoryID, lang)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Fixed envelope: paging is not caller-adjustable in this deployment.
	c.JSON(http.StatusOK, gin.H{
		"data": dishes,
		"pagination": gin.H{
			"page":  1,
			"limit": 100,
			"total": len(dishes),
		},
	})
}

// GetDishByID -> single localized dish
func (mc *MenuController) GetDishByID(c *gin.Context) {
	dishID := c.Param("dish_id")
	if err := requireUUID("dish_id", dishID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	lang := models.ParseLanguage(c.Query("lang"))

	dish, err := mc.svc.GetDish(dishID, lang)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrDishNotFound)
		return
	}

	c.JSON(http.StatusOK, dish)
}
