package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// Catalog provides read access to products for every surface and write
// access for the admin product manager.
type Catalog struct {
	productStore model.ProductStore
	storage      model.ObjectStorage
	degraded     bool
	logger       *logger.Logger
}

// NewCatalog creates a catalog service. degraded marks that the product
// store is the volatile in-memory fallback because the database was
// unreachable; it is reported, not hidden inside error handling.
func NewCatalog(productStore model.ProductStore, storage model.ObjectStorage, degraded bool, logger *logger.Logger) *Catalog {
	return &Catalog{
		productStore: productStore,
		storage:      storage,
		degraded:     degraded,
		logger:       logger,
	}
}

// Degraded reports whether the catalog runs on the volatile in-memory
// fallback store.
func (s *Catalog) Degraded() bool {
	return s.degraded
}

func (s *Catalog) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *Catalog) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Product{}, model.NewErrProductNotFound(id.String())
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}
	return product, nil
}

// CreateProductParams contains the fields for a new catalog product.
type CreateProductParams struct {
	Brand       string
	Name        string
	Price       float64
	Image       string
	Category    string
	Subcategory string
	Description string
}

func (s *Catalog) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if params.Name == "" {
		return model.Product{}, model.NewErrValidation("product name is required")
	}
	if params.Price < 0 {
		return model.Product{}, model.NewErrValidation("price must not be negative")
	}

	product, err := s.productStore.Create(ctx, model.Product{
		ID:          uuid.New(),
		Brand:       params.Brand,
		Name:        params.Name,
		Price:       params.Price,
		Image:       params.Image,
		Category:    params.Category,
		Subcategory: params.Subcategory,
		Description: params.Description,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Catalog service: product created",
		"product_id", product.ID,
		"name", product.Name)

	return product, nil
}

func (s *Catalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.productStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewErrProductNotFound(id.String())
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("Catalog service: product deleted",
		"product_id", id)

	return nil
}

// UploadImage stores a product image in object storage and stamps the
// product with the resulting URL.
func (s *Catalog) UploadImage(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) (model.Product, error) {
	if s.storage == nil {
		return model.Product{}, model.NewErrValidation("image storage is not configured")
	}

	product, err := s.productStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Product{}, model.NewErrProductNotFound(id.String())
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	key := fmt.Sprintf("products/%s", id)
	url, err := s.storage.Upload(ctx, key, reader, size, contentType)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to upload image: %w", err)
	}

	product.Image = url
	product, err = s.productStore.Update(ctx, product)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to update product image: %w", err)
	}

	s.logger.Info("Catalog service: product image uploaded",
		"product_id", id)

	return product, nil
}
