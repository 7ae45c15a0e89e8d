package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `INSERT INTO products (id, brand, name, price, image, category, subcategory, description, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, brand, name, price, image, category, subcategory, description, created_at`

	var saved model.Product
	err := r.db.QueryRow(ctx, query,
		product.ID, product.Brand, product.Name, product.Price, product.Image,
		product.Category, product.Subcategory, product.Description, product.CreatedAt,
	).Scan(
		&saved.ID, &saved.Brand, &saved.Name, &saved.Price, &saved.Image,
		&saved.Category, &saved.Subcategory, &saved.Description, &saved.CreatedAt,
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return saved, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	var product model.Product
	query := `SELECT id, brand, name, price, image, category, subcategory, description, created_at
			  FROM products WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Brand, &product.Name, &product.Price, &product.Image,
		&product.Category, &product.Subcategory, &product.Description, &product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, brand, name, price, image, category, subcategory, description, created_at
			  FROM products ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(
			&product.ID, &product.Brand, &product.Name, &product.Price, &product.Image,
			&product.Category, &product.Subcategory, &product.Description, &product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product model.Product) (model.Product, error) {
	query := `UPDATE products
			  SET brand = $2, name = $3, price = $4, image = $5, category = $6, subcategory = $7, description = $8
			  WHERE id = $1
			  RETURNING id, brand, name, price, image, category, subcategory, description, created_at`

	var saved model.Product
	err := r.db.QueryRow(ctx, query,
		product.ID, product.Brand, product.Name, product.Price, product.Image,
		product.Category, product.Subcategory, product.Description,
	).Scan(
		&saved.ID, &saved.Brand, &saved.Name, &saved.Price, &saved.Image,
		&saved.Category, &saved.Subcategory, &saved.Description, &saved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return saved, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
