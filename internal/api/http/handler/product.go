package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
	"github.com/thevanityindia/vanity-server/internal/service"
)

// CatalogService defines catalog read and admin write operations.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	CreateProduct(ctx context.Context, params service.CreateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) (model.Product, error)
	Degraded() bool
}

// Product handles the /api/products endpoints.
type Product struct {
	catalogService CatalogService
	logger         *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(catalogService CatalogService, logger *logger.Logger) *Product {
	return &Product{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List handles GET /api/products.
func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("Product handler: list failed",
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toProductDTOs(products))
}

// Get handles GET /api/products/{id}.
func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid product id"))
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toProductDTO(product))
}

type createProductRequest struct {
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Description string  `json:"description"`
}

// Create handles POST /api/products (admin only).
func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), service.CreateProductParams{
		Brand:       req.Brand,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("Product handler: create failed",
			"name", req.Name,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toProductDTO(product))
}

// Delete handles DELETE /api/products/{id} (admin only).
func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid product id"))
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "product deleted")
}

// maxImageSize bounds product image uploads to 5 MiB.
const maxImageSize = 5 << 20

// UploadImage handles POST /api/products/{id}/image (admin only).
func (h *Product) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid product id"))
		return
	}

	reader := http.MaxBytesReader(w, r.Body, maxImageSize)
	product, err := h.catalogService.UploadImage(r.Context(), id, reader, r.ContentLength, r.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("Product handler: image upload failed",
			"product_id", id,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toProductDTO(product))
}
