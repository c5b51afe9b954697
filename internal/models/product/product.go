package product

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"-"`
}

type CreateProductRequest struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}
