package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thevanityindia/vanity-server/internal/testutil"
)

func newGuestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New("http://127.0.0.1:0", NewMemoryStorage(), testutil.MakeNoopLogger())
	require.NoError(t, err)
	return c
}

func testProduct(id string, price float64) Product {
	return Product{ID: id, Brand: "Lakme", Name: "Item " + id, Price: Price(price)}
}

func TestGuestCart_AddDeduplicates(t *testing.T) {
	ctx := context.Background()
	c := newGuestClient(t)
	product := testProduct("p1", 600)

	require.NoError(t, c.AddToCart(ctx, product, 1))
	require.NoError(t, c.AddToCart(ctx, product, 1))

	lines := c.Cart()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestGuestCart_QuantityFloor(t *testing.T) {
	ctx := context.Background()
	c := newGuestClient(t)
	product := testProduct("p1", 600)

	require.NoError(t, c.AddToCart(ctx, product, 1))
	require.NoError(t, c.UpdateQuantity(ctx, c.Cart()[0], 0))

	lines := c.Cart()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestGuestCart_RemoveAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := newGuestClient(t)

	require.NoError(t, c.AddToCart(ctx, testProduct("p1", 600), 1))
	require.NoError(t, c.RemoveLine(ctx, CartLine{Product: testProduct("ghost", 1)}))

	assert.Len(t, c.Cart(), 1)
}

func TestGuestCart_Total(t *testing.T) {
	ctx := context.Background()
	c := newGuestClient(t)

	// Prices entering as formatted strings are normalized at the decode
	// boundary; totals never branch on representation.
	price, err := ParsePrice("₹1,000")
	require.NoError(t, err)

	require.NoError(t, c.AddToCart(ctx, Product{ID: "a", Price: Price(price)}, 2))
	require.NoError(t, c.AddToCart(ctx, Product{ID: "b", Price: Price(249.50)}, 1))

	assert.Equal(t, 2249.50, c.CartTotal())
}

func TestGuestCart_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storefront.json")

	store, err := NewFileStorage(path)
	require.NoError(t, err)

	c, err := New("http://127.0.0.1:0", store, testutil.MakeNoopLogger())
	require.NoError(t, err)
	require.NoError(t, c.AddToCart(ctx, testProduct("p1", 600), 2))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)
	c2, err := New("http://127.0.0.1:0", reopened, testutil.MakeNoopLogger())
	require.NoError(t, err)

	lines := c2.Cart()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "p1", lines[0].Product.ID)
}

func TestGuestWishlist_Toggle(t *testing.T) {
	ctx := context.Background()
	c := newGuestClient(t)
	product := testProduct("p1", 600)

	assert.False(t, c.IsInWishlist(product.ID))

	require.NoError(t, c.AddToWishlist(ctx, product))
	assert.True(t, c.IsInWishlist(product.ID))

	// Re-adding is a no-op, first seen wins.
	require.NoError(t, c.AddToWishlist(ctx, product))
	assert.Len(t, c.Wishlist(), 1)

	require.NoError(t, c.RemoveFromWishlist(ctx, product.ID))
	assert.False(t, c.IsInWishlist(product.ID))
}

func TestGuestWishlist_RemoveAbsentIsNoOp(t *testing.T) {
	c := newGuestClient(t)

	require.NoError(t, c.RemoveFromWishlist(context.Background(), "ghost"))
	assert.Empty(t, c.Wishlist())
}

func TestFilterAndSort(t *testing.T) {
	products := []Product{
		{ID: "a", Brand: "Lakme", Category: "makeup", Subcategory: "lips", Price: 300},
		{ID: "b", Brand: "Maybelline", Category: "makeup", Subcategory: "eyes", Price: 100},
		{ID: "c", Brand: "Lakme", Category: "skincare", Price: 200},
	}

	makeup := FilterByCategory(products, "Makeup", "")
	require.Len(t, makeup, 2)

	lips := FilterByCategory(products, "makeup", "Lips")
	require.Len(t, lips, 1)
	assert.Equal(t, "a", lips[0].ID)

	lakme := FilterByBrand(products, []string{"lakme"})
	require.Len(t, lakme, 2)

	mid := FilterByPriceRange(products, 150, 250)
	require.Len(t, mid, 1)
	assert.Equal(t, "c", mid[0].ID)

	asc := SortProducts(products, SortPriceAsc)
	assert.Equal(t, []string{"b", "c", "a"}, []string{asc[0].ID, asc[1].ID, asc[2].ID})

	desc := SortProducts(products, SortPriceDesc)
	assert.Equal(t, "a", desc[0].ID)

	// Input order untouched.
	assert.Equal(t, "a", products[0].ID)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	store, err := NewFileStorage(filepath.Join(t.TempDir(), "state", "store.json"))
	require.NoError(t, err)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", []byte(`"v"`)))

	value, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"v"`, string(value))

	require.NoError(t, store.Delete("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
