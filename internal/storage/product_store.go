package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kunalverma25/gomart/internal/database"
	"github.com/kunalverma25/gomart/internal/models/product"
)

type PGProductStore struct {
	db *database.Manager
}

func NewProductStore(db *database.Manager) *PGProductStore {
	return &PGProductStore{db: db}
}

func (s *PGProductStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10, 2) NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := s.db.Pool().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	return nil
}

// Seed inserts a starter catalog when the table is empty so a fresh
// deployment has something to list.
func (s *PGProductStore) Seed(ctx context.Context) error {
	var count int
	if err := s.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []*product.CreateProductRequest{
		{Name: "Laptop", Description: "High-performance laptop", Price: 999.99, Stock: 10},
		{Name: "Mouse", Description: "Wireless mouse", Price: 29.99, Stock: 50},
		{Name: "Keyboard", Description: "Mechanical keyboard", Price: 79.99, Stock: 30},
		{Name: "Monitor", Description: "27-inch 4K monitor", Price: 399.99, Stock: 15},
		{Name: "Headphones", Description: "Noise-canceling headphones", Price: 199.99, Stock: 25},
	}

	for _, sample := range samples {
		if _, err := s.Create(ctx, sample); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	return nil
}

func (s *PGProductStore) List(ctx context.Context) ([]*product.Product, error) {
	query := `
		SELECT id, name, description, price, stock, created_at
		FROM products
		ORDER BY id
	`

	rows, err := s.db.Pool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}

func (s *PGProductStore) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	query := `
		SELECT id, name, description, price, stock, created_at
		FROM products
		WHERE id = $1
	`

	var p product.Product
	err := s.db.Pool().QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

func (s *PGProductStore) Create(ctx context.Context, req *product.CreateProductRequest) (int64, error) {
	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := s.db.Pool().QueryRow(ctx, query, req.Name, req.Description, req.Price, req.Stock).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	return id, nil
}
