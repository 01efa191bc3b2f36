package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/passione-app/passione-backend/controllers"
	"github.com/passione-app/passione-backend/database"
	"github.com/passione-app/passione-backend/models"
)

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	r.GET("/restaurants/:restaurant_id/menu", menuCtrl.GetRestaurantMenu)
	r.GET("/dishes", menuCtrl.GetDishes)
	r.GET("/dishes/:dish_id", menuCtrl.GetDishByID)
	return r
}

func TestGetRestaurantMenuDefaultLanguage(t *testing.T) {
	db := newTestDB(t, "menu_ru")
	r := setupMenuRouter(db)

	w := doRequest(t, r, http.MethodGet, "/restaurants/"+database.RestaurantID+"/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, database.MenuID, resp["id"])
	assert.Equal(t, "Основное меню", resp["name"])

	categories := resp["categories"].([]interface{})
	require.Len(t, categories, 5)

	// Categories come back sorted by sort_order ascending.
	first := categories[0].(map[string]interface{})
	last := categories[4].(map[string]interface{})
	assert.Equal(t, "Антипасти", first["name"])
	assert.Equal(t, float64(1), first["sort_order"])
	assert.Equal(t, "Напитки", last["name"])
	assert.Equal(t, float64(5), last["sort_order"])

	assert.Len(t, first["dishes"].([]interface{}), 3)
}

func TestGetRestaurantMenuEnglishSubstitution(t *testing.T) {
	db := newTestDB(t, "menu_en")
	r := setupMenuRouter(db)

	w := doRequest(t, r, http.MethodGet, "/restaurants/"+database.RestaurantID+"/menu?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	categories := resp["categories"].([]interface{})
	require.Len(t, categories, 5)

	first := categories[0].(map[string]interface{})
	assert.Equal(t, "Antipasti", first["name"])
	// Category descriptions carry no English variant and fall back to Russian.
	assert.Equal(t, "Итальянские закуски", first["description"])

	var bruschetta map[string]interface{}
	for _, raw := range first["dishes"].([]interface{}) {
		dish := raw.(map[string]interface{})
		if dish["id"] == database.DishBruschettaID {
			bruschetta = dish
		}
	}
	require.NotNil(t, bruschetta)
	assert.Equal(t, "Bruschetta with tomatoes", bruschetta["name"])
	assert.Equal(t, "Crispy bread with fresh tomatoes and basil", bruschetta["description"])
	assert.Equal(t, float64(450), bruschetta["price"])
}

func TestGetRestaurantMenuSkipsUnavailableDishes(t *testing.T) {
	db := newTestDB(t, "menu_avail")
	r := setupMenuRouter(db)

	err := db.Model(&models.Dish{}).Where("id = ?", database.DishBruschettaID).
		Update("is_available", false).Error
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodGet, "/restaurants/"+database.RestaurantID+"/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	antipasti := resp["categories"].([]interface{})[0].(map[string]interface{})
	dishes := antipasti["dishes"].([]interface{})
	assert.Len(t, dishes, 2)
	for _, raw := range dishes {
		assert.NotEqual(t, database.DishBruschettaID, raw.(map[string]interface{})["id"])
	}
}

func TestGetRestaurantMenuNotFound(t *testing.T) {
	db := newTestDB(t, "menu_404")
	r := setupMenuRouter(db)

	w := doRequest(t, r, http.MethodGet, "/restaurants/"+uuid.NewString()+"/menu", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDishesListingAndFilter(t *testing.T) {
	db := newTestDB(t, "dishes_list")
	r := setupMenuRouter(db)

	w := doRequest(t, r, http.MethodGet, "/dishes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Len(t, resp["data"].([]interface{}), 12)

	pagination := resp["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(100), pagination["limit"])
	assert.Equal(t, float64(12), pagination["total"])

	w = doRequest(t, r, http.MethodGet, "/dishes?category_id="+database.CatDolciID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, float64(2), resp["pagination"].(map[string]interface{})["total"])
}

func TestGetDishByIDLocalized(t *testing.T) {
	db := newTestDB(t, "dish_get")
	r := setupMenuRouter(db)

	w := doRequest(t, r, http.MethodGet, "/dishes/"+database.DishTiramisuID+"?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Tiramisu", resp["name"])
	assert.Equal(t, float64(490), resp["price"])
	assert.ElementsMatch(t, []interface{}{"глютен", "яйца", "молоко"}, resp["allergens"].([]interface{}))

	w = doRequest(t, r, http.MethodGet, "/dishes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/dishes/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
