package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/salvarez-dev/eshop-api/models"
)

// MemoryStore is a map-backed implementation of every repository interface.
// It backs the handler and service tests so they run without Postgres, and
// mirrors the population behavior of the GORM stores.
type MemoryStore struct {
	mu sync.RWMutex

	nextProductID  uint
	nextCategoryID uint
	nextUserID     uint
	nextOrderID    uint
	nextItemID     uint

	products   map[uint]models.Product
	categories map[uint]models.Category
	users      map[uint]models.User
	orders     map[uint]models.Order
	orderItems map[uint]models.OrderItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextProductID:  1,
		nextCategoryID: 1,
		nextUserID:     1,
		nextOrderID:    1,
		nextItemID:     1,
		products:       make(map[uint]models.Product),
		categories:     make(map[uint]models.Category),
		users:          make(map[uint]models.User),
		orders:         make(map[uint]models.Order),
		orderItems:     make(map[uint]models.OrderItem),
	}
}

var (
	_ ProductRepository  = (*MemoryStore)(nil)
	_ CategoryRepository = (*memoryCategories)(nil)
	_ UserRepository     = (*memoryUsers)(nil)
	_ OrderRepository    = (*memoryOrders)(nil)
)

// ---- products ----

func (m *MemoryStore) populateProduct(p models.Product) models.Product {
	if cat, ok := m.categories[p.CategoryID]; ok {
		p.Category = cat
	}
	return p
}

func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		if len(f.CategoryIDs) > 0 && !containsID(f.CategoryIDs, p.CategoryID) {
			continue
		}
		out = append(out, m.populateProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) Get(ctx context.Context, id uint) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := m.populateProduct(p)
	return &cp, nil
}

func (m *MemoryStore) Create(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextProductID
	m.nextProductID++
	if p.DateCreated.IsZero() {
		p.DateCreated = time.Now()
	}
	m.products[p.ID] = *p
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.products[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.DateCreated = existing.DateCreated
	m.products[p.ID] = *p
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.products)), nil
}

func (m *MemoryStore) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Product{}
	if limit <= 0 {
		return out, nil
	}
	ids := make([]uint, 0, len(m.products))
	for id := range m.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		p := m.products[id]
		if !p.IsFeatured {
			continue
		}
		out = append(out, m.populateProduct(p))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// The non-product repositories are views over the same store, so the CRUD
// method names don't collide on one receiver.
func (m *MemoryStore) Categories() CategoryRepository { return (*memoryCategories)(m) }
func (m *MemoryStore) Users() UserRepository          { return (*memoryUsers)(m) }
func (m *MemoryStore) Orders() OrderRepository        { return (*memoryOrders)(m) }
func (m *MemoryStore) Products() ProductRepository    { return m }

// ---- categories ----

type memoryCategories MemoryStore

func (m *memoryCategories) List(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryCategories) Get(ctx context.Context, id uint) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (m *memoryCategories) Create(ctx context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextCategoryID
	m.nextCategoryID++
	m.categories[c.ID] = *c
	return nil
}

func (m *memoryCategories) Update(ctx context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[c.ID]; !ok {
		return ErrNotFound
	}
	m.categories[c.ID] = *c
	return nil
}

func (m *memoryCategories) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

// ---- users ----

type memoryUsers MemoryStore

func (m *memoryUsers) List(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryUsers) Get(ctx context.Context, id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryUsers) Create(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = m.nextUserID
	m.nextUserID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memoryUsers) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memoryUsers) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.users)), nil
}

// ---- orders ----

type memoryOrders MemoryStore

func (m *memoryOrders) populateOrder(o models.Order) models.Order {
	if u, ok := m.users[o.UserID]; ok {
		o.User = u
	}
	items := make([]models.OrderItem, 0)
	ids := make([]uint, 0, len(m.orderItems))
	for id := range m.orderItems {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		item := m.orderItems[id]
		if item.OrderID != o.ID {
			continue
		}
		if p, ok := m.products[item.ProductID]; ok {
			if cat, ok := m.categories[p.CategoryID]; ok {
				p.Category = cat
			}
			item.Product = p
		}
		items = append(items, item)
	}
	o.Items = items
	return o
}

func (m *memoryOrders) sortedOrders(match func(models.Order) bool) []models.Order {
	out := make([]models.Order, 0)
	for _, o := range m.orders {
		if match(o) {
			out = append(out, m.populateOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DateOrdered.Equal(out[j].DateOrdered) {
			return out[i].ID > out[j].ID
		}
		return out[i].DateOrdered.After(out[j].DateOrdered)
	})
	return out
}

func (m *memoryOrders) List(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedOrders(func(models.Order) bool { return true }), nil
}

func (m *memoryOrders) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedOrders(func(o models.Order) bool { return o.UserID == userID }), nil
}

func (m *memoryOrders) Get(ctx context.Context, id uint) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := m.populateOrder(o)
	return &cp, nil
}

func (m *memoryOrders) CreateItem(ctx context.Context, item *models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.nextItemID
	m.nextItemID++
	m.orderItems[item.ID] = *item
	return nil
}

func (m *memoryOrders) GetItem(ctx context.Context, id uint) (*models.OrderItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.orderItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	p, ok := m.products[item.ProductID]
	if !ok {
		return nil, ErrNotFound
	}
	item.Product = p
	cp := item
	return &cp, nil
}

func (m *memoryOrders) Create(ctx context.Context, o *models.Order, itemIDs []uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = m.nextOrderID
	m.nextOrderID++
	if o.DateOrdered.IsZero() {
		o.DateOrdered = time.Now()
	}
	for _, id := range itemIDs {
		item, ok := m.orderItems[id]
		if !ok {
			return ErrNotFound
		}
		item.OrderID = o.ID
		m.orderItems[id] = item
	}
	m.orders[o.ID] = *o
	return nil
}

func (m *memoryOrders) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	m.mu.Lock()
	o, ok := m.orders[id]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	o.Status = status
	m.orders[id] = o
	cp := m.populateOrder(o)
	m.mu.Unlock()
	return &cp, nil
}

func (m *memoryOrders) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return ErrNotFound
	}
	for itemID, item := range m.orderItems {
		if item.OrderID == id {
			delete(m.orderItems, itemID)
		}
	}
	delete(m.orders, id)
	return nil
}

func (m *memoryOrders) TotalSales(ctx context.Context) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total float64
	for _, o := range m.orders {
		total += o.TotalPrice
	}
	return total, nil
}

func (m *memoryOrders) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.orders)), nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
