package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salvarez-dev/eshop-api/models"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

var _ OrderRepository = (*OrderStore)(nil)

func (s *OrderStore) populated(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category")
}

func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.populated(ctx).Order("date_ordered DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.populated(ctx).
		Where("user_id = ?", userID).
		Order("date_ordered DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.populated(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) CreateItem(ctx context.Context, item *models.OrderItem) error {
	return s.db.WithContext(ctx).Omit("Product").Create(item).Error
}

func (s *OrderStore) GetItem(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := s.db.WithContext(ctx).Preload("Product").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create writes the order row and points the previously written items at it.
// Deliberately not transactional: item writes happened before this call, so a
// failure here can leave detached items behind (see the assembly service).
func (s *OrderStore) Create(ctx context.Context, o *models.Order, itemIDs []uint) error {
	if err := s.db.WithContext(ctx).Omit("Items", "User").Create(o).Error; err != nil {
		return err
	}
	if len(itemIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("id IN ?", itemIDs).
		Update("order_id", o.ID).Error
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *OrderStore) Delete(ctx context.Context, id uint) error {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

func (s *OrderStore) TotalSales(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

func (s *OrderStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}
