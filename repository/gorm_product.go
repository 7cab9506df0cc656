package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salvarez-dev/eshop-api/models"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

var _ ProductRepository = (*ProductStore)(nil)

func (s *ProductStore) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Preload("Category")
	if len(f.CategoryIDs) > 0 {
		q = q.Where("category_id IN ?", f.CategoryIDs)
	}
	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) Create(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Omit("Category").Create(p).Error
}

func (s *ProductStore) Update(ctx context.Context, p *models.Product) error {
	var existing models.Product
	if err := s.db.WithContext(ctx).First(&existing, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	p.DateCreated = existing.DateCreated
	return s.db.WithContext(ctx).Omit("Category").Save(p).Error
}

func (s *ProductStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}

func (s *ProductStore) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	products := []models.Product{}
	if limit <= 0 {
		return products, nil
	}
	err := s.db.WithContext(ctx).Preload("Category").
		Where("is_featured = ?", true).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
