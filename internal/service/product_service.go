package service

import (
	"context"

	"github.com/kunalverma25/gomart/internal/logger"
	"github.com/kunalverma25/gomart/internal/models/product"
	"github.com/kunalverma25/gomart/internal/storage"
)

type ProductService struct {
	products storage.ProductStore
	log      *logger.Logger
}

func NewProductService(products storage.ProductStore) *ProductService {
	return &ProductService{
		products: products,
		log:      logger.New("product-service"),
	}
}

func (s *ProductService) List(ctx context.Context) ([]*product.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req *product.CreateProductRequest) (int64, error) {
	id, err := s.products.Create(ctx, req)
	if err != nil {
		return 0, err
	}

	s.log.Info("Product created: %s", req.Name)
	return id, nil
}
