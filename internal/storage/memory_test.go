package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kunalverma25/gomart/internal/models/product"
)

func TestMemoryUserStore_Create(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	u, err := store.Create(ctx, "a@x.com", "hash", "Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("expected first user id 1, got %d", u.ID)
	}
	if u.Email != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got '%s'", u.Email)
	}
}

func TestMemoryUserStore_DuplicateEmail(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, "a@x.com", "hash1", "Alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := store.Create(ctx, "a@x.com", "hash2", "Impostor")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if store.Count() != 1 {
		t.Errorf("expected exactly one stored user, got %d", store.Count())
	}

	u, err := store.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.PasswordHash != "hash1" {
		t.Error("duplicate create must not overwrite the original record")
	}
}

func TestMemoryUserStore_ConcurrentCreates(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, "race@x.com", "hash", "Racer")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrDuplicateEmail):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("expected exactly one successful create, got %d", succeeded)
	}
	if duplicates != attempts-1 {
		t.Errorf("expected %d duplicate errors, got %d", attempts-1, duplicates)
	}
	if store.Count() != 1 {
		t.Errorf("expected exactly one stored user, got %d", store.Count())
	}
}

func TestMemoryUserStore_FindByEmail_NotFound(t *testing.T) {
	store := NewMemoryUserStore()

	_, err := store.FindByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryProductStore(t *testing.T) {
	store := NewMemoryProductStore()
	ctx := context.Background()

	id, err := store.Create(ctx, &product.CreateProductRequest{
		Name:  "Laptop",
		Price: 999.99,
		Stock: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got '%s'", p.Name)
	}

	if _, err := store.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	products, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("expected 1 product, got %d", len(products))
	}
}
