package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/salvarez-dev/eshop-api/models"
	"github.com/salvarez-dev/eshop-api/repository"
)

var ErrInvalidInput = errors.New("invalid order input")

// OrderService assembles orders: it persists the line items, snapshots
// product prices into a total, and writes the order referencing the items.
type OrderService struct {
	orders repository.OrderRepository
	log    *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{orders: orders, log: log}
}

type OrderItemInput struct {
	ProductID uint `json:"product"`
	Quantity  int  `json:"quantity"`
}

type OrderInput struct {
	Items            []OrderItemInput
	ShippingAddress1 string
	ShippingAddress2 string
	City             string
	Zip              string
	Country          string
	Phone            string
	UserID           uint
}

// PlaceOrder runs the three assembly steps. Item writes fan out
// concurrently and are joined before totals are computed; any failure aborts
// the order. There is no transaction across the steps and no compensation
// for items already written when a later step fails.
func (s *OrderService) PlaceOrder(ctx context.Context, in OrderInput) (*models.Order, error) {
	if len(in.Items) == 0 || in.ShippingAddress1 == "" || in.UserID == 0 {
		return nil, ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil, ErrInvalidInput
		}
	}

	// Step 1: persist every item, in any order, all before proceeding.
	itemIDs := make([]uint, len(in.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range in.Items {
		i, item := i, item
		g.Go(func() error {
			record := models.OrderItem{
				Quantity:  item.Quantity,
				ProductID: item.ProductID,
			}
			if err := s.orders.CreateItem(gctx, &record); err != nil {
				return err
			}
			itemIDs[i] = record.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Warn("order item write failed; items written before the failure are not rolled back",
			zap.Error(err))
		return nil, err
	}

	// Step 2: resolve prices and total. A second read per item, so the
	// total reflects prices as of now and never changes afterwards.
	var totalPrice float64
	for _, id := range itemIDs {
		item, err := s.orders.GetItem(ctx, id)
		if err != nil {
			s.log.Warn("price resolution failed; written items are left detached",
				zap.Uint("orderItemId", id), zap.Error(err))
			return nil, err
		}
		totalPrice += float64(item.Quantity) * item.Product.Price
	}

	// Step 3: persist the order referencing the items.
	order := models.Order{
		ShippingAddress1: in.ShippingAddress1,
		ShippingAddress2: in.ShippingAddress2,
		City:             in.City,
		Zip:              in.Zip,
		Country:          in.Country,
		Phone:            in.Phone,
		Status:           models.OrderStatusPending,
		TotalPrice:       totalPrice,
		UserID:           in.UserID,
		DateOrdered:      time.Now(),
	}
	if err := s.orders.Create(ctx, &order, itemIDs); err != nil {
		s.log.Warn("order write failed after items were persisted; items are orphaned",
			zap.Uints("orderItemIds", itemIDs), zap.Error(err))
		return nil, err
	}
	return s.orders.Get(ctx, order.ID)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if status == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.UpdateStatus(ctx, id, status)
}

// Delete removes the order together with every item it references.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.orders.Delete(ctx, id)
}

// TotalSales sums TotalPrice across all orders; an empty store yields an
// explicit zero.
func (s *OrderService) TotalSales(ctx context.Context) (float64, error) {
	return s.orders.TotalSales(ctx)
}

func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.orders.Count(ctx)
}
