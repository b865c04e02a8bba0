package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, slug, name, category, new, price, description, features,
		includes, image, category_image, gallery, others`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) *productRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves the full catalogue.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows, r.logger)
}

// GetByID retrieves a single product by its numeric ID.
func (r *productRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// GetBySlug retrieves a single product by its unique slug.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("slug", slug).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("slug", slug).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// GetByCategory retrieves all products in a category.
func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		r.logger.Error().Err(err).Str("category", category).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows, r.logger)
}

// SeedProducts inserts catalogue rows that are not present yet. Existing
// rows are left untouched so re-running startup is harmless.
func (r *productRepository) SeedProducts(ctx context.Context, products []model.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		includes, err := json.Marshal(p.Includes)
		if err != nil {
			return fmt.Errorf("failed to encode includes for %s: %w", p.Slug, err)
		}
		var gallery []byte
		if p.Gallery != nil {
			if gallery, err = json.Marshal(p.Gallery); err != nil {
				return fmt.Errorf("failed to encode gallery for %s: %w", p.Slug, err)
			}
		}
		var others []byte
		if p.Others != nil {
			if others, err = json.Marshal(p.Others); err != nil {
				return fmt.Errorf("failed to encode others for %s: %w", p.Slug, err)
			}
		}

		var categoryImage *string
		if p.CategoryImage != "" {
			img := p.CategoryImage
			categoryImage = &img
		}

		batch.Queue(query,
			p.ID, p.Slug, p.Name, p.Category, p.New, p.Price, p.Description, p.Features,
			includes, p.Image, categoryImage, gallery, others)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(products); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Str("slug", products[i].Slug).Msg("failed to seed product")
			return fmt.Errorf("failed to seed product %s: %w", products[i].Slug, err)
		}
	}

	r.logger.Info().Int("count", len(products)).Msg("catalogue seeded")
	return nil
}

// scanProduct decodes a single product row, including its jsonb columns.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p             model.Product
		includesRaw   []byte
		categoryImage *string
		galleryRaw    []byte
		othersRaw     []byte
	)

	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.Category, &p.New, &p.Price,
		&p.Description, &p.Features, &includesRaw, &p.Image, &categoryImage,
		&galleryRaw, &othersRaw)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(includesRaw, &p.Includes); err != nil {
		return nil, fmt.Errorf("failed to decode includes: %w", err)
	}
	if categoryImage != nil {
		p.CategoryImage = *categoryImage
	}
	if len(galleryRaw) > 0 {
		p.Gallery = &model.Gallery{}
		if err := json.Unmarshal(galleryRaw, p.Gallery); err != nil {
			return nil, fmt.Errorf("failed to decode gallery: %w", err)
		}
	}
	if len(othersRaw) > 0 {
		if err := json.Unmarshal(othersRaw, &p.Others); err != nil {
			return nil, fmt.Errorf("failed to decode others: %w", err)
		}
	}

	return &p, nil
}

// scanProducts drains a product result set.
func scanProducts(rows pgx.Rows, logger zerolog.Logger) ([]model.Product, error) {
	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
