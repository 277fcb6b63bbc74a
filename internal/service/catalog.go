package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
)

var ErrDocumentNil = errors.New("document is nil")

// CatalogListResult is the service-level DTO for the full listing.
type CatalogListResult struct {
	Items []model.Entry `json:"data"`
	Total int           `json:"total"`
}

// CatalogService defines the use cases for the document catalog.
type CatalogService interface {
	// Add appends a document to the catalog and returns its listing entry.
	Add(ctx context.Context, doc model.Document) (*model.Entry, error)

	// List returns every document in insertion order.
	List(ctx context.Context) (*CatalogListResult, error)

	// Get returns the document with the given 1-based number.
	// Numbers outside the catalog yield an error matching repository.ErrOutOfRange.
	Get(ctx context.Context, number int) (*model.Entry, error)
}

// catalogService is a concrete implementation of CatalogService.
type catalogService struct {
	addMu   sync.Mutex // serialises Add so the appended position is known
	reg     repository.DocumentRegistry
	metrics *Metrics
	tracer  trace.Tracer
}

// NewCatalogService constructs a new CatalogService. metrics may be nil.
func NewCatalogService(reg repository.DocumentRegistry, metrics *Metrics) CatalogService {
	return &catalogService{
		reg:     reg,
		metrics: metrics,
		tracer:  otel.Tracer("doccatalog/service"),
	}
}

func (s *catalogService) Add(ctx context.Context, doc model.Document) (*model.Entry, error) {
	if doc == nil {
		return nil, ErrDocumentNil
	}
	_, span := s.tracer.Start(ctx, "catalog.add",
		trace.WithAttributes(attribute.String("document.kind", string(doc.Kind()))))
	defer span.End()

	s.addMu.Lock()
	s.reg.Add(doc)
	entry := model.NewEntry(s.reg.Count()-1, doc)
	s.addMu.Unlock()
	s.metrics.observeAdd(doc.Kind())

	span.SetAttributes(attribute.Int("document.number", entry.Number))
	return &entry, nil
}

// List returns the full listing without exposing repository types.
func (s *catalogService) List(ctx context.Context) (*CatalogListResult, error) {
	_, span := s.tracer.Start(ctx, "catalog.list")
	defer span.End()

	items := s.reg.ListAll()
	span.SetAttributes(attribute.Int("catalog.total", len(items)))
	return &CatalogListResult{Items: items, Total: len(items)}, nil
}

// Get converts the 1-based number to an index and looks it up.
func (s *catalogService) Get(ctx context.Context, number int) (*model.Entry, error) {
	_, span := s.tracer.Start(ctx, "catalog.get",
		trace.WithAttributes(attribute.Int("document.number", number)))
	defer span.End()

	entry, err := s.reg.Info(number - 1)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("get document #%d: %w", number, err)
	}
	return &entry, nil
}
