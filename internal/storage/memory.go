package storage

import (
	"context"
	"sync"
	"time"

	"github.com/kunalverma25/gomart/internal/models/product"
	"github.com/kunalverma25/gomart/internal/models/user"
)

// MemoryUserStore mirrors the postgres store's atomicity guarantee with a
// mutex: the duplicate check and the insert happen under one lock.
type MemoryUserStore struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]*user.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		nextID:  1,
		byEmail: make(map[string]*user.User),
	}
}

func (s *MemoryUserStore) Create(ctx context.Context, email, passwordHash, name string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrDuplicateEmail
	}

	u := &user.User{
		ID:           s.nextID,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.nextID++
	s.byEmail[email] = u

	return u, nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byEmail[email]
	if !exists {
		return nil, ErrNotFound
	}

	return u, nil
}

// Count reports the number of stored users. Test helper.
func (s *MemoryUserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}

type MemoryProductStore struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]*product.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{
		nextID:   1,
		products: make(map[int64]*product.Product),
	}
}

func (s *MemoryProductStore) List(ctx context.Context) ([]*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*product.Product, 0, len(s.products))
	for id := int64(1); id < s.nextID; id++ {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}

	return products, nil
}

func (s *MemoryProductStore) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[id]
	if !exists {
		return nil, ErrNotFound
	}

	return p, nil
}

func (s *MemoryProductStore) Create(ctx context.Context, req *product.CreateProductRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &product.Product{
		ID:          s.nextID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.products[p.ID] = p

	return p.ID, nil
}
