package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
)

// EvidenceStore persists raw evidence bytes and returns an opaque URL
// reference to embed in the alert document.
type EvidenceStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// DataURIStore is the development fallback used when no object store is
// configured: bytes are inlined into the alert document as a data URI.
type DataURIStore struct{}

// NewDataURIStore creates the inline fallback store.
func NewDataURIStore() *DataURIStore {
	return &DataURIStore{}
}

// Put encodes the payload as a data URI. The caller has already bounded
// the payload size.
func (s *DataURIStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read evidence payload: %w", err)
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
