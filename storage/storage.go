package storage

import (
	"context"
)

// ObjectStore is the external blob store the content upload flow writes to.
// Put stores the bytes under key and returns a publicly resolvable URL.
// There is no delete: content deletion only removes the metadata row and
// intentionally leaves the blob behind.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (string, error)
}
