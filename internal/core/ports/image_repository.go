package ports

import "context"

// ImageRepository is pure key -> bytes storage for freezer images.
// Get reports a miss through the second return value, not an error; the
// caller decides whether to substitute a default asset.
type ImageRepository interface {
	Get(ctx context.Context, freezer string) ([]byte, bool, error)
	Put(ctx context.Context, freezer string, data []byte) error
	Delete(ctx context.Context, freezer string) error
}
