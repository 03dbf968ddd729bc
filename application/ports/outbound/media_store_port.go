package outbound

import "context"

type StoreMediaParams struct {
	Key         string
	Content     []byte
	ContentType string
}

// MediaStorePort persists a byte payload under a logical key and returns a
// durable, publicly fetchable URL. No retry at this layer.
type MediaStorePort interface {
	Store(ctx context.Context, params StoreMediaParams) (string, error)
}
