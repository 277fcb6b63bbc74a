package repository

import "doccatalog/internal/model"

// DocumentRegistry is the ordered, append-only collection of catalog documents.
// Storage only; numbering and lookup rules live here, presentation does not.
type DocumentRegistry interface {
	// Add appends a document after every document already stored.
	Add(doc model.Document)

	// ListAll returns one entry per document in insertion order, numbered from 1.
	ListAll() []model.Entry

	// Info returns the entry of the document at the 0-based index.
	// It returns *OutOfRangeError when index is outside [0, Count()).
	Info(index int) (model.Entry, error)

	// Count returns the number of stored documents.
	Count() int
}
