package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

const productColumns = "id, name, company, price, description, image, featured, clerk_id, created_at"

func (r *postgresProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (id, name, company, price, description, image, featured, clerk_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at`

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	createdAt := time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		product.ID,
		product.Name,
		product.Company,
		product.Price,
		product.Description,
		product.Image,
		product.Featured,
		product.ClerkID,
		createdAt,
	).Scan(&product.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to create product with unknown owner id: %s", product.ClerkID)
			return nil, fmt.Errorf("owner with id %s does not exist", product.ClerkID)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for product '%s': %s", product.Name, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	r.log.Infof("Product created successfully with ID: %s, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE id = $1`

	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Company,
		&product.Price,
		&product.Description,
		&product.Image,
		&product.Featured,
		&product.ClerkID,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %s not found", id)
			return nil, domain.ErrProductNotFound
		}
		r.log.Errorf("Failed to get product by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	return product, nil
}

// ListAll returns products whose name or company contains the search term
// case-insensitively, newest first. An empty term matches everything.
func (r *postgresProductRepository) ListAll(ctx context.Context, search string) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE name ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%'
        ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, search)
	if err != nil {
		r.log.Errorf("Failed to list products with search %q: %v", search, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		r.log.Errorf("Error reading products list: %v", err)
		return nil, err
	}
	r.log.Infof("Retrieved %d products (search: %q)", len(products), search)
	return products, nil
}

func (r *postgresProductRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE featured = TRUE`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list featured products: %v", err)
		return nil, fmt.Errorf("could not list featured products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		r.log.Errorf("Error reading featured products list: %v", err)
		return nil, err
	}
	r.log.Infof("Retrieved %d featured products", len(products))
	return products, nil
}

func (r *postgresProductRepository) ListByOwner(ctx context.Context, clerkID string) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE clerk_id = $1
        ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, clerkID)
	if err != nil {
		r.log.Errorf("Failed to list products for owner %s: %v", clerkID, err)
		return nil, fmt.Errorf("could not list products by owner: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		r.log.Errorf("Error reading owner products list: %v", err)
		return nil, err
	}
	return products, nil
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Company,
			&product.Price,
			&product.Description,
			&product.Image,
			&product.Featured,
			&product.ClerkID,
			&product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
