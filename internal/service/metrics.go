package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
)

// Metrics holds the catalog-level Prometheus collectors.
type Metrics struct {
	addedTotal *prometheus.CounterVec
}

// RegisterMetrics registers the catalog collectors on reg.
// The catalog_documents gauge is read from the registry at scrape time.
func RegisterMetrics(reg prometheus.Registerer, docs repository.DocumentRegistry) (*Metrics, error) {
	m := &Metrics{
		addedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_documents_added_total",
				Help: "Total number of documents added to the catalog.",
			},
			[]string{"kind"},
		),
	}
	size := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "catalog_documents",
			Help: "Number of documents currently held in the catalog.",
		},
		func() float64 { return float64(docs.Count()) },
	)

	if err := reg.Register(m.addedTotal); err != nil {
		return nil, err
	}
	if err := reg.Register(size); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observeAdd(k model.Kind) {
	if m == nil {
		return
	}
	m.addedTotal.WithLabelValues(string(k)).Inc()
}
