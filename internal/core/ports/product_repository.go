package ports

import (
	"context"

	"github.com/frostline/freezer-api/internal/core/domain"
)

// ProductRepository defines read access to the product reference data.
type ProductRepository interface {
	List(ctx context.Context, page Page) ([]*domain.Product, error)
	Get(ctx context.Context, name string) (*domain.Product, error)
	// Defaults returns the full name -> default count mapping in one call.
	Defaults(ctx context.Context) (map[string]int64, error)
}
