package memory

import (
	"sync"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
)

// Registry is an in-memory implementation of repository.DocumentRegistry.
// It is safe for concurrent use; the HTTP front-end reads and appends from many goroutines.
type Registry struct {
	mu   sync.RWMutex
	docs []model.Document
}

// New creates an empty Registry. Construct one per process and pass it to its consumers.
func New() *Registry {
	return &Registry{}
}

var _ repository.DocumentRegistry = (*Registry)(nil)

// Add appends doc. A nil document is ignored.
func (r *Registry) Add(doc model.Document) {
	if doc == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, doc)
}

// ListAll returns every document in insertion order. An empty registry yields an empty slice.
func (r *Registry) ListAll() []model.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Entry, 0, len(r.docs))
	for i, doc := range r.docs {
		out = append(out, model.NewEntry(i, doc))
	}
	return out
}

// Info returns the entry at the 0-based index.
func (r *Registry) Info(index int) (model.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.docs) {
		return model.Entry{}, &repository.OutOfRangeError{Index: index, Count: len(r.docs)}
	}
	return model.NewEntry(index, r.docs[index]), nil
}

// Count returns the number of stored documents.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}
