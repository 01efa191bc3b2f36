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
)

func setupCartRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	cartCtrl := controllers.NewCartController(db)
	r.GET("/carts/:session_id", cartCtrl.GetCart)
	r.POST("/carts/:session_id/items", cartCtrl.AddCartItem)
	r.GET("/cart-items/:item_id", cartCtrl.GetCartItem)
	r.PATCH("/cart-items/:item_id", cartCtrl.UpdateCartItem)
	r.DELETE("/cart-items/:item_id", cartCtrl.DeleteCartItem)
	return r
}

func addItem(t *testing.T, r *gin.Engine, sessionID string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/carts/"+sessionID+"/items", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func TestAddCartItemMergesSameDish(t *testing.T) {
	db := newTestDB(t, "cart_merge")
	r := setupCartRouter(db)
	session := newTestSession(t, db)

	first := addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishBruschettaID,
		"quantity": 2,
	})
	assert.Equal(t, float64(2), first["quantity"])
	assert.Equal(t, float64(450), first["price"])

	// Adding the same dish again merges into the existing line.
	second := addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishBruschettaID,
		"quantity": 3,
		"comment":  "без базилика",
	})
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, float64(5), second["quantity"])
	assert.Equal(t, "без базилика", second["comment"])

	// Omitted comment leaves the stored one in place.
	third := addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishBruschettaID,
		"quantity": 1,
	})
	assert.Equal(t, float64(6), third["quantity"])
	assert.Equal(t, "без базилика", third["comment"])

	w := doRequest(t, r, http.MethodGet, "/carts/"+session.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeBody(t, w)
	require.Len(t, cart["items"].([]interface{}), 1)
	assert.Equal(t, float64(6*450), cart["total_amount"])
}

func TestCartItemPriceIsSnapshotted(t *testing.T) {
	db := newTestDB(t, "cart_snapshot")
	r := setupCartRouter(db)
	session := newTestSession(t, db)

	addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishEspressoID,
		"quantity": 1,
	})

	// A later dish price change must not touch the item snapshot.
	require.NoError(t, db.Table("dishes").Where("id = ?", database.DishEspressoID).
		Update("price", 999).Error)

	w := doRequest(t, r, http.MethodGet, "/carts/"+session.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeBody(t, w)
	item := cart["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(180), item["price"])
	assert.Equal(t, float64(180), cart["total_amount"])
	// The attached dish view reflects the current price.
	assert.Equal(t, float64(999), item["dish"].(map[string]interface{})["price"])
}

func TestCartTotalTracksMutations(t *testing.T) {
	db := newTestDB(t, "cart_total")
	r := setupCartRouter(db)
	session := newTestSession(t, db)

	bruschetta := addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishBruschettaID,
		"quantity": 2,
	})
	espresso := addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishEspressoID,
		"quantity": 1,
	})

	w := doRequest(t, r, http.MethodGet, "/carts/"+session.ID, nil)
	assert.Equal(t, float64(2*450+180), decodeBody(t, w)["total_amount"])

	// Update quantity only, comment untouched.
	w = doRequest(t, r, http.MethodPatch, "/cart-items/"+bruschetta["id"].(string), map[string]interface{}{
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/carts/"+session.ID, nil)
	assert.Equal(t, float64(450+180), decodeBody(t, w)["total_amount"])

	w = doRequest(t, r, http.MethodDelete, "/cart-items/"+espresso["id"].(string), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, "/carts/"+session.ID, nil)
	assert.Equal(t, float64(450), decodeBody(t, w)["total_amount"])
}

func TestUpdateCartItemPatchSemantics(t *testing.T) {
	db := newTestDB(t, "cart_patch")
	r := setupCartRouter(db)
	session := newTestSession(t, db)

	item := addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishSteakID,
		"quantity": 1,
		"comment":  "medium rare",
	})
	itemID := item["id"].(string)

	// Comment-only patch keeps the quantity.
	w := doRequest(t, r, http.MethodPatch, "/cart-items/"+itemID, map[string]interface{}{
		"comment": "well done",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1), resp["quantity"])
	assert.Equal(t, "well done", resp["comment"])

	// Quantity below one is rejected at the boundary.
	w = doRequest(t, r, http.MethodPatch, "/cart-items/"+itemID, map[string]interface{}{
		"quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPatch, "/cart-items/"+uuid.NewString(), map[string]interface{}{
		"quantity": 2,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCartItem(t *testing.T) {
	db := newTestDB(t, "cart_delete")
	r := setupCartRouter(db)
	session := newTestSession(t, db)

	item := addItem(t, r, session.ID, map[string]interface{}{
		"dish_id":  database.DishWineID,
		"quantity": 2,
	})
	itemID := item["id"].(string)

	w := doRequest(t, r, http.MethodDelete, "/cart-items/"+itemID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, "/cart-items/"+itemID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/cart-items/"+itemID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCartItemNotFoundCases(t *testing.T) {
	db := newTestDB(t, "cart_404")
	r := setupCartRouter(db)
	session := newTestSession(t, db)

	// Unknown dish.
	w := doRequest(t, r, http.MethodPost, "/carts/"+session.ID+"/items", map[string]interface{}{
		"dish_id":  uuid.NewString(),
		"quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown session.
	w = doRequest(t, r, http.MethodPost, "/carts/"+uuid.NewString()+"/items", map[string]interface{}{
		"dish_id":  database.DishWineID,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Zero quantity never reaches the services.
	w = doRequest(t, r, http.MethodPost, "/carts/"+session.ID+"/items", map[string]interface{}{
		"dish_id":  database.DishWineID,
		"quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
