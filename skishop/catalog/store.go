package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/skishopbot/core/logger"
	"log/slog"
)

// Store persists products in Postgres.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

const insertQuery = `
INSERT INTO products (category, name, size, description, price, photo_urls)
VALUES (:category, :name, :size, :description, :price, :photo_urls)
RETURNING id`

// Insert stores a completed product and fills in its generated ID.
func (s *Store) Insert(ctx context.Context, p *Product) error {
	rows, err := s.db.NamedQueryContext(ctx, insertQuery, p)
	if err != nil {
		logger.SVCCatalog.Error("insert failed",
			slog.String("name", logger.SanitizeLimit(p.Name, 64)),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("insert product: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&p.ID); err != nil {
			return fmt.Errorf("scan product id: %w", err)
		}
	}

	logger.SVCCatalog.Info("product stored",
		slog.Int64("id", p.ID),
		slog.String("category", string(p.Category)),
		slog.Int("photos", len(p.PhotoURLs)),
	)
	return nil
}

// ListAll returns every stored product, oldest first.
func (s *Store) ListAll(ctx context.Context) ([]Product, error) {
	var products []Product
	err := s.db.SelectContext(ctx, &products,
		`SELECT id, category, name, size, description, price, photo_urls, created_at
		 FROM products ORDER BY created_at, id`)
	if err != nil {
		logger.SVCCatalog.Error("list failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
