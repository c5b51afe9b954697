package storage

import (
	"context"
	"errors"

	"github.com/kunalverma25/gomart/internal/models/product"
	"github.com/kunalverma25/gomart/internal/models/user"
)

var (
	// ErrDuplicateEmail is returned by UserStore.Create when the email is
	// already taken. The backing store enforces this atomically; callers
	// never pre-check.
	ErrDuplicateEmail = errors.New("email already exists")

	ErrNotFound = errors.New("record not found")
)

type UserStore interface {
	// Create inserts a new user and returns it with the store-assigned id.
	// The uniqueness check and the insert are a single atomic operation:
	// under concurrent creates for the same email exactly one succeeds and
	// the rest observe ErrDuplicateEmail.
	Create(ctx context.Context, email, passwordHash, name string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type ProductStore interface {
	List(ctx context.Context) ([]*product.Product, error)
	GetByID(ctx context.Context, id int64) (*product.Product, error)
	Create(ctx context.Context, req *product.CreateProductRequest) (int64, error)
}
