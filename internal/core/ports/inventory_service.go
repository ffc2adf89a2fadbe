package ports

import (
	"context"

	"github.com/frostline/freezer-api/internal/core/domain"
)

// InventoryService is what the HTTP handlers talk to. Handlers never touch
// the repositories directly.
type InventoryService interface {
	ListFreezers(ctx context.Context, page Page) ([]*domain.Freezer, error)
	GetFreezer(ctx context.Context, name string) (*domain.Freezer, error)
	ReplaceFreezer(ctx context.Context, f *domain.Freezer) (*domain.Freezer, error)
	RemoveFreezer(ctx context.Context, name string) error

	// PutIn adds amounts of products to a freezer; amounts must be positive.
	PutIn(ctx context.Context, name string, amounts map[string]int64) (*domain.Freezer, error)
	// PutOut takes amounts of products out of a freezer, applying the
	// configured underflow policy.
	PutOut(ctx context.Context, name string, amounts map[string]int64) (*domain.Freezer, error)
	RemoveProduct(ctx context.Context, name string, product string) (*domain.Freezer, error)

	ListProducts(ctx context.Context, page Page) ([]*domain.Product, error)
	GetProduct(ctx context.Context, name string) (*domain.Product, error)
}
