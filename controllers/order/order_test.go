package orderControllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvarez-dev/eshop-api/models"
	"github.com/salvarez-dev/eshop-api/repository"
	"github.com/salvarez-dev/eshop-api/routes"
	"github.com/salvarez-dev/eshop-api/services"
)

func setupRouter(t *testing.T) (*gin.Engine, *repository.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	r := gin.New()
	api := r.Group("/api/v1")
	routes.SetupOrderRoutes(api, routes.Deps{
		Orders: services.NewOrderService(store.Orders(), nil),
	})
	return r, store
}

func seed(t *testing.T, store *repository.MemoryStore) (models.Product, models.User) {
	t.Helper()
	ctx := context.Background()
	category := models.Category{Name: "Tools"}
	require.NoError(t, store.Categories().Create(ctx, &category))
	product := models.Product{Name: "Hammer", Price: 10, CategoryID: category.ID, CountInStock: 5}
	require.NoError(t, store.Products().Create(ctx, &product))
	user := models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, &user))
	return product, user
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func placeOrder(t *testing.T, r *gin.Engine, product models.Product, user models.User, quantity int) models.Order {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]any{
		"orderItems":       []map[string]any{{"product": product.ID, "quantity": quantity}},
		"shippingAddress1": "1 Main St",
		"city":             "Springfield",
		"zip":              "12345",
		"country":          "US",
		"phone":            "555-0100",
		"user":             user.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	return order
}

func TestPlaceOrderEndpoint(t *testing.T) {
	r, store := setupRouter(t)
	product, user := seed(t, store)

	order := placeOrder(t, r, product, user, 3)
	assert.Equal(t, 30.0, order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Hammer", order.Items[0].Product.Name)
	assert.Equal(t, "Tools", order.Items[0].Product.Category.Name)
	assert.Equal(t, "jane@example.com", order.User.Email)
}

func TestPlaceOrderRejectsBadPayloads(t *testing.T) {
	r, store := setupRouter(t)
	_, user := seed(t, store)

	w := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]any{
		"shippingAddress1": "1 Main St", "user": user.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing items")

	w = doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]any{
		"orderItems": []map[string]any{{"product": 999, "quantity": 1}},
		"shippingAddress1": "1 Main St", "user": user.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown product")
}

func TestOrderLookupAndStatus(t *testing.T) {
	r, store := setupRouter(t)
	product, user := seed(t, store)
	order := placeOrder(t, r, product, user, 1)
	path := "/api/v1/orders/" + strconv.Itoa(int(order.ID))

	w := doJSON(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, path, map[string]any{"status": "Shipped"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Shipped", updated.Status)

	w = doJSON(t, r, http.MethodPut, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "status is required")

	w = doJSON(t, r, http.MethodPut, "/api/v1/orders/999", map[string]any{"status": "Shipped"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrderCascades(t *testing.T) {
	r, store := setupRouter(t)
	product, user := seed(t, store)
	order := placeOrder(t, r, product, user, 2)
	itemID := order.Items[0].ID

	w := doJSON(t, r, http.MethodDelete, "/api/v1/orders/"+strconv.Itoa(int(order.ID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := store.Orders().GetItem(context.Background(), itemID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/orders/"+strconv.Itoa(int(order.ID)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderAggregates(t *testing.T) {
	r, store := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/orders/get/totalsales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalsales": 0}`, w.Body.String())

	product, user := seed(t, store)
	placeOrder(t, r, product, user, 3)
	placeOrder(t, r, product, user, 1)

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/get/totalsales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalsales": 40}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/get/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"orderCount": 2}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/get/userorders/"+strconv.Itoa(int(user.ID)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/get/userorders/bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
