package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kunalverma25/gomart/internal/logger"
	"github.com/kunalverma25/gomart/internal/models/product"
	"github.com/kunalverma25/gomart/internal/service"
)

type ProductHandler struct {
	products *service.ProductService
	log      *logger.Logger
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		products: productService,
		log:      logger.New("product-handler"),
	}
}

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       int      `json:"stock"`
}

type CreateProductResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		h.log.Error("Failed to list products: %v", err)
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	p, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		status, message := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.log.Error("Failed to get product %d: %v", id, err)
		}
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Create is wired behind the auth middleware; by the time it runs the
// request already carries verified claims.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Price == nil || *req.Price <= 0 {
		respondError(w, http.StatusBadRequest, "Name and price required")
		return
	}

	id, err := h.products.Create(r.Context(), &product.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		h.log.Error("Failed to create product: %v", err)
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusCreated, CreateProductResponse{
		Message: "Product created",
		ID:      id,
	})
}
