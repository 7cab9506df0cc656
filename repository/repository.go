package repository

import (
	"context"
	"errors"

	"github.com/salvarez-dev/eshop-api/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// ProductFilter narrows a product listing to a set of categories.
// An empty CategoryIDs slice means no filtering.
type ProductFilter struct {
	CategoryIDs []uint
}

type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	// List returns fully populated orders, newest first.
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	Get(ctx context.Context, id uint) (*models.Order, error)
	CreateItem(ctx context.Context, item *models.OrderItem) error
	// GetItem returns the item with its product populated.
	GetItem(ctx context.Context, id uint) (*models.OrderItem, error)
	// Create persists the order and attaches the already written items.
	Create(ctx context.Context, o *models.Order, itemIDs []uint) error
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error)
	// Delete removes the order and every item it references.
	Delete(ctx context.Context, id uint) error
	TotalSales(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int64, error)
}
