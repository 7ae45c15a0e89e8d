package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thevanityindia/vanity-server/internal/mocks"
	"github.com/thevanityindia/vanity-server/internal/model"
	"github.com/thevanityindia/vanity-server/internal/testutil"
)

func TestCatalog_Degraded(t *testing.T) {
	degraded := NewCatalog(&mocks.ProductStore{}, nil, true, testutil.MakeNoopLogger())
	healthy := NewCatalog(&mocks.ProductStore{}, nil, false, testutil.MakeNoopLogger())

	assert.True(t, degraded.Degraded())
	assert.False(t, healthy.Degraded())
}

func TestCatalog_GetProduct_NotFound(t *testing.T) {
	productStore := &mocks.ProductStore{}
	id := uuid.New()

	productStore.On("GetByID", mock.Anything, id).Return(model.Product{}, model.ErrNotFound)

	s := NewCatalog(productStore, nil, false, testutil.MakeNoopLogger())

	_, err := s.GetProduct(context.Background(), id)

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestCatalog_CreateProduct_Validation(t *testing.T) {
	s := NewCatalog(&mocks.ProductStore{}, nil, false, testutil.MakeNoopLogger())

	_, err := s.CreateProduct(context.Background(), CreateProductParams{Price: 100})
	require.Error(t, err)

	_, err = s.CreateProduct(context.Background(), CreateProductParams{Name: "Lipstick", Price: -1})
	require.Error(t, err)
}

func TestCatalog_UploadImage(t *testing.T) {
	productStore := &mocks.ProductStore{}
	storage := &mocks.ObjectStorage{}
	id := uuid.New()
	reader := strings.NewReader("image-bytes")

	productStore.On("GetByID", mock.Anything, id).Return(model.Product{ID: id, Name: "Serum"}, nil)
	storage.On("Upload", mock.Anything, "products/"+id.String(), reader, int64(11), "image/png").
		Return("https://cdn.example.com/products/"+id.String(), nil)
	productStore.On("Update", mock.Anything, mock.MatchedBy(func(product model.Product) bool {
		return product.ID == id && strings.HasPrefix(product.Image, "https://cdn.example.com/")
	})).Return(model.Product{ID: id, Image: "https://cdn.example.com/products/" + id.String()}, nil)

	s := NewCatalog(productStore, storage, false, testutil.MakeNoopLogger())

	product, err := s.UploadImage(context.Background(), id, reader, 11, "image/png")
	require.NoError(t, err)
	assert.Contains(t, product.Image, id.String())
}

func TestCatalog_UploadImage_StorageNotConfigured(t *testing.T) {
	s := NewCatalog(&mocks.ProductStore{}, nil, false, testutil.MakeNoopLogger())

	_, err := s.UploadImage(context.Background(), uuid.New(), strings.NewReader(""), 0, "image/png")
	require.Error(t, err)
}
