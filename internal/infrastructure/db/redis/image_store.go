package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ImageStore holds freezer images in Redis as raw bytes.
// Key format: freezers:<name>:image
type ImageStore struct {
	client *redis.Client
}

// NewImageStore creates an ImageStore wrapping the given Redis client.
func NewImageStore(client *redis.Client) *ImageStore {
	return &ImageStore{client: client}
}

// Get returns the stored image. A missing key is a miss, not an error.
func (s *ImageStore) Get(ctx context.Context, freezer string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key(freezer)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get image: %w", err)
	}
	return data, true, nil
}

// Put stores the image without expiry; images persist until deleted.
func (s *ImageStore) Put(ctx context.Context, freezer string, data []byte) error {
	if err := s.client.Set(ctx, s.key(freezer), data, 0).Err(); err != nil {
		return fmt.Errorf("put image: %w", err)
	}
	return nil
}

// Delete removes the image. Deleting a missing key is not an error.
func (s *ImageStore) Delete(ctx context.Context, freezer string) error {
	if err := s.client.Del(ctx, s.key(freezer)).Err(); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

func (s *ImageStore) key(freezer string) string {
	return fmt.Sprintf("freezers:%s:image", freezer)
}
