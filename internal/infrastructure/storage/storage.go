package storage

import (
	"context"
	"io"
)

// ObjectStore holds binary assets (images) outside the document database,
// addressed by a storage path and retrieved through a URL that can be parsed
// back into that path.
type ObjectStore interface {
	// Save writes the object at path and returns its retrieval URL.
	Save(ctx context.Context, path string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
	// PathFromURL derives the storage path from a retrieval URL. It returns
	// "" on input it cannot parse; callers treat that as "skip deletion".
	PathFromURL(url string) string
}
