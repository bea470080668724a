package ports

import (
	"context"
)

// BlobStore persists binary attachments (route log photos) and returns a
// stable URI that is stored on the route log aggregate. Implementations must
// never reuse a URI for different content.
type BlobStore interface {
	// Put stores the content under a freshly generated name and returns its URI.
	// contentType is advisory and may be used to pick a file extension.
	Put(ctx context.Context, content []byte, contentType string) (string, error)

	// Get returns the content previously stored under uri.
	// Returns errs.ObjectNotFoundError when the uri is unknown.
	Get(ctx context.Context, uri string) ([]byte, error)
}
