package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvarez-dev/eshop-api/models"
	"github.com/salvarez-dev/eshop-api/repository"
	"github.com/salvarez-dev/eshop-api/services"
)

func setup(t *testing.T) (*services.OrderService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return services.NewOrderService(store.Orders(), nil), store
}

func seedProduct(t *testing.T, store *repository.MemoryStore, name string, price float64, stock int) *models.Product {
	t.Helper()
	ctx := context.Background()
	category := models.Category{Name: "Tools"}
	require.NoError(t, store.Categories().Create(ctx, &category))
	product := models.Product{
		Name:         name,
		Price:        price,
		CategoryID:   category.ID,
		CountInStock: stock,
	}
	require.NoError(t, store.Products().Create(ctx, &product))
	return &product
}

func seedUser(t *testing.T, store *repository.MemoryStore) *models.User {
	t.Helper()
	user := models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(context.Background(), &user))
	return &user
}

func TestPlaceOrderComputesTotal(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	hammer := seedProduct(t, store, "Hammer", 10, 5)
	user := seedUser(t, store)

	order, err := svc.PlaceOrder(ctx, services.OrderInput{
		Items:            []services.OrderItemInput{{ProductID: hammer.ID, Quantity: 3}},
		ShippingAddress1: "1 Main St",
		City:             "Springfield",
		Zip:              "12345",
		Country:          "US",
		Phone:            "555-0100",
		UserID:           user.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 30.0, order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, hammer.ID, order.Items[0].ProductID)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, user.ID, order.UserID)
}

func TestPlaceOrderSnapshotsPrices(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	product := seedProduct(t, store, "Hammer", 10, 5)
	user := seedUser(t, store)

	order, err := svc.PlaceOrder(ctx, services.OrderInput{
		Items:            []services.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		ShippingAddress1: "1 Main St",
		UserID:           user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 20.0, order.TotalPrice)

	product.Price = 99
	require.NoError(t, store.Products().Update(ctx, product))

	reloaded, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, reloaded.TotalPrice, "total must not follow later price changes")
}

func TestPlaceOrderMultipleItems(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	hammer := seedProduct(t, store, "Hammer", 10, 5)
	nails := models.Product{Name: "Nails", Price: 2.5, CategoryID: hammer.CategoryID, CountInStock: 100}
	require.NoError(t, store.Products().Create(ctx, &nails))
	user := seedUser(t, store)

	order, err := svc.PlaceOrder(ctx, services.OrderInput{
		Items: []services.OrderItemInput{
			{ProductID: hammer.ID, Quantity: 1},
			{ProductID: nails.ID, Quantity: 4},
		},
		ShippingAddress1: "1 Main St",
		UserID:           user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, order.TotalPrice)
	assert.Len(t, order.Items, 2)
}

func TestPlaceOrderInvalidInput(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	user := seedUser(t, store)

	cases := []services.OrderInput{
		{ShippingAddress1: "1 Main St", UserID: user.ID},
		{Items: []services.OrderItemInput{{ProductID: 1, Quantity: 1}}, UserID: user.ID},
		{Items: []services.OrderItemInput{{ProductID: 1, Quantity: 0}}, ShippingAddress1: "1 Main St", UserID: user.ID},
		{Items: []services.OrderItemInput{{ProductID: 0, Quantity: 1}}, ShippingAddress1: "1 Main St", UserID: user.ID},
	}
	for _, input := range cases {
		_, err := svc.PlaceOrder(ctx, input)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	}

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestPlaceOrderUnknownProductFails(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	user := seedUser(t, store)

	_, err := svc.PlaceOrder(ctx, services.OrderInput{
		Items:            []services.OrderItemInput{{ProductID: 999, Quantity: 1}},
		ShippingAddress1: "1 Main St",
		UserID:           user.ID,
	})
	require.Error(t, err)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "no order may be persisted when assembly fails")
}

func TestUpdateStatus(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	product := seedProduct(t, store, "Hammer", 10, 5)
	user := seedUser(t, store)
	order, err := svc.PlaceOrder(ctx, services.OrderInput{
		Items:            []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress1: "1 Main St",
		UserID:           user.ID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, "Shipped", updated.Status)
	assert.Equal(t, order.TotalPrice, updated.TotalPrice)

	_, err = svc.UpdateStatus(ctx, 999, "Shipped")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.UpdateStatus(ctx, order.ID, "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestDeleteCascadesItems(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	product := seedProduct(t, store, "Hammer", 10, 5)
	user := seedUser(t, store)
	order, err := svc.PlaceOrder(ctx, services.OrderInput{
		Items:            []services.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		ShippingAddress1: "1 Main St",
		UserID:           user.ID,
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	itemID := order.Items[0].ID

	require.NoError(t, svc.Delete(ctx, order.ID))

	_, err = svc.Get(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Orders().GetItem(ctx, itemID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "items must not outlive their order")

	assert.ErrorIs(t, svc.Delete(ctx, order.ID), repository.ErrNotFound)
}

func TestTotalSales(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	total, err := svc.TotalSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total, "empty store must report an explicit zero")

	product := seedProduct(t, store, "Hammer", 10, 5)
	user := seedUser(t, store)
	for i := 0; i < 2; i++ {
		_, err := svc.PlaceOrder(ctx, services.OrderInput{
			Items:            []services.OrderItemInput{{ProductID: product.ID, Quantity: 3}},
			ShippingAddress1: "1 Main St",
			UserID:           user.ID,
		})
		require.NoError(t, err)
	}

	total, err = svc.TotalSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60.0, total)
}

func TestListSortsNewestFirst(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	product := seedProduct(t, store, "Hammer", 10, 5)
	user := seedUser(t, store)
	var ids []uint
	for i := 0; i < 3; i++ {
		order, err := svc.PlaceOrder(ctx, services.OrderInput{
			Items:            []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
			ShippingAddress1: "1 Main St",
			UserID:           user.ID,
		})
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)

	byUser, err := svc.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 3)

	byOther, err := svc.ListByUser(ctx, user.ID+1)
	require.NoError(t, err)
	assert.Empty(t, byOther)
}
