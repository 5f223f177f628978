package objectstore

import (
	"context"
	"errors"
	"strings"
	"sync"

	"marketplace-integrations/internal/core/ports"
)

var _ ports.DocumentStore = (*MemoryStore)(nil)

// Document is a stored file.
type Document struct {
	ContentType string
	Body        []byte
}

// MemoryStore keeps documents in process and serves them from this
// service's own /documents route. It stands in for the bucket when no
// storage credentials are configured.
type MemoryStore struct {
	baseURL string

	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryStore returns a store whose URLs are rooted at publicURL.
func NewMemoryStore(publicURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: strings.TrimRight(publicURL, "/") + "/documents/",
		docs:    make(map[string]Document),
	}
}

func (s *MemoryStore) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	s.mu.Lock()
	s.docs[key] = Document{ContentType: contentType, Body: append([]byte(nil), body...)}
	s.mu.Unlock()
	return s.baseURL + key, nil
}

// Get returns the document stored under key.
func (s *MemoryStore) Get(key string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	return doc, ok
}
