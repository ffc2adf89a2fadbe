package ports

import (
	"context"

	"github.com/frostline/freezer-api/internal/core/domain"
)

// Page carries limit/offset pagination for listing endpoints. A zero Limit
// means "no limit". Listings are always ordered by document key so the same
// page request returns the same slice of the collection.
type Page struct {
	Limit  int64
	Offset int64
}

// FreezerRepository defines persistence operations for freezers.
//
// Add/Take/RemoveProduct are the quantity-adjustment primitives. Each call
// must be atomic with respect to concurrent callers on the same freezer:
// implementations delegate to the store's native field-increment rather than
// doing a local read-modify-write, so two concurrent adjustments can never
// lose an update.
type FreezerRepository interface {
	List(ctx context.Context, page Page) ([]*domain.Freezer, error)
	Get(ctx context.Context, name string) (*domain.Freezer, error)
	// Replace swaps the whole document body, keeping the key.
	Replace(ctx context.Context, name string, f *domain.Freezer) (*domain.Freezer, error)
	Remove(ctx context.Context, name string) error

	// Add increments product counts, creating entries on first put-in.
	// Returns the freezer after the adjustment.
	Add(ctx context.Context, name string, amounts map[string]int64) (*domain.Freezer, error)
	// Take decrements product counts under the given underflow policy.
	Take(ctx context.Context, name string, amounts map[string]int64, policy domain.UnderflowPolicy) (*domain.Freezer, error)
	// RemoveProduct deletes one key from the products map. The document is
	// untouched when the key is absent (ErrProductNotFound).
	RemoveProduct(ctx context.Context, name string, product string) (*domain.Freezer, error)

	// SetCounts overwrites the given product counts in one atomic write.
	SetCounts(ctx context.Context, name string, counts map[string]int64) error
	// Each streams every freezer in key order through fn, stopping at the
	// first error.
	Each(ctx context.Context, fn func(*domain.Freezer) error) error
}
