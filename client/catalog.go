package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ListProducts fetches the full catalog. The result also refreshes the
// product cache used to resolve cart lines.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.api.doData(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}

	c.cacheProducts(products)
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	var product Product
	if err := c.api.doData(ctx, http.MethodGet, "/api/products/"+id, nil, &product); err != nil {
		return Product{}, err
	}

	c.cacheProducts([]Product{product})
	return product, nil
}

// resolveProduct maps a product id from a server cart or wishlist onto
// catalog data, hitting the network only on a cache miss.
func (c *Client) resolveProduct(ctx context.Context, id string) (Product, error) {
	if product, ok := c.cachedProduct(id); ok {
		return product, nil
	}

	product, err := c.GetProduct(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("failed to resolve product %s: %w", id, err)
	}
	return product, nil
}

// The catalog is small enough that filtering and sorting are pure
// client-side operations over the full listing.

// FilterByCategory keeps products in the given category, and within the
// given subcategory when one is supplied.
func FilterByCategory(products []Product, category, subcategory string) []Product {
	filtered := make([]Product, 0, len(products))
	for _, product := range products {
		if !strings.EqualFold(product.Category, category) {
			continue
		}
		if subcategory != "" && !strings.EqualFold(product.Subcategory, subcategory) {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}

// FilterByBrand keeps products whose brand is in brands. An empty
// brands list keeps everything.
func FilterByBrand(products []Product, brands []string) []Product {
	if len(brands) == 0 {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, product := range products {
		for _, brand := range brands {
			if strings.EqualFold(product.Brand, brand) {
				filtered = append(filtered, product)
				break
			}
		}
	}
	return filtered
}

// FilterByPriceRange keeps products with min <= price <= max. A max of
// 0 means no upper bound.
func FilterByPriceRange(products []Product, min, max float64) []Product {
	filtered := make([]Product, 0, len(products))
	for _, product := range products {
		price := float64(product.Price)
		if price < min {
			continue
		}
		if max > 0 && price > max {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}

// Sort orders for SortProducts.
const (
	SortDefault   = ""           // insertion order, stable
	SortPriceAsc  = "price_asc"  // cheapest first
	SortPriceDesc = "price_desc" // most expensive first
)

// SortProducts returns a sorted copy; the input is not modified. An
// unknown order keeps insertion order.
func SortProducts(products []Product, order string) []Product {
	sorted := append([]Product(nil), products...)
	switch order {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	}
	return sorted
}
