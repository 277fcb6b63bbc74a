package service

import (
	"context"
	"testing"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
	"doccatalog/internal/repository/memory"
	repoMocks "doccatalog/internal/repository/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Add(t *testing.T) {
	ctx := context.Background()
	doc := model.WordDocument{Metadata: model.Metadata{Name: "Report.docx"}, PageCount: 7}

	tests := []struct {
		name       string
		doc        model.Document
		setupMocks func(mReg *repoMocks.MockDocumentRegistry)
		wantErr    error
		wantNumber int
	}{
		{
			name: "happy path",
			doc:  doc,
			setupMocks: func(mReg *repoMocks.MockDocumentRegistry) {
				mReg.On("Add", doc).Once()
				mReg.On("Count").Return(3).Once()
			},
			wantNumber: 3,
		},
		{
			name:       "validation error - nil document",
			doc:        nil,
			setupMocks: func(mReg *repoMocks.MockDocumentRegistry) {},
			wantErr:    ErrDocumentNil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mReg := new(repoMocks.MockDocumentRegistry)
			svc := NewCatalogService(mReg, nil)

			tt.setupMocks(mReg)

			entry, err := svc.Add(ctx, tt.doc)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantNumber, entry.Number)
				assert.Equal(t, model.KindWord, entry.Kind)
				assert.Equal(t, doc.Describe(), entry.Description)
			}
			mReg.AssertExpectations(t)
		})
	}
}

func TestCatalogService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		items     []model.Entry
		wantTotal int
	}{
		{
			name:      "happy path",
			items:     []model.Entry{{Number: 1, Kind: model.KindPdf}, {Number: 2, Kind: model.KindTxt}},
			wantTotal: 2,
		},
		{
			name:      "empty catalog",
			items:     []model.Entry{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mReg := new(repoMocks.MockDocumentRegistry)
			mReg.On("ListAll").Return(tt.items).Once()
			svc := NewCatalogService(mReg, nil)

			res, err := svc.List(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.items, res.Items)
			mReg.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		number     int
		setupMocks func(mReg *repoMocks.MockDocumentRegistry)
		wantErr    error
	}{
		{
			name:   "happy path - number converted to index",
			number: 2,
			setupMocks: func(mReg *repoMocks.MockDocumentRegistry) {
				mReg.On("Info", 1).Return(model.Entry{Number: 2, Kind: model.KindExcel}, nil)
			},
		},
		{
			name:   "out of range",
			number: 9,
			setupMocks: func(mReg *repoMocks.MockDocumentRegistry) {
				mReg.On("Info", 8).Return(model.Entry{}, &repository.OutOfRangeError{Index: 8, Count: 2})
			},
			wantErr: repository.ErrOutOfRange,
		},
		{
			name:   "zero is out of range",
			number: 0,
			setupMocks: func(mReg *repoMocks.MockDocumentRegistry) {
				mReg.On("Info", -1).Return(model.Entry{}, &repository.OutOfRangeError{Index: -1, Count: 2})
			},
			wantErr: repository.ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mReg := new(repoMocks.MockDocumentRegistry)
			svc := NewCatalogService(mReg, nil)

			tt.setupMocks(mReg)

			entry, err := svc.Get(ctx, tt.number)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.number, entry.Number)
			}
			mReg.AssertExpectations(t)
		})
	}
}

func TestCatalogService_WithMemoryRegistry(t *testing.T) {
	ctx := context.Background()
	reg := memory.New()
	svc := NewCatalogService(reg, nil)

	pdf := model.PdfDocument{Metadata: model.Metadata{Name: "Guide.pdf"}, IsProtected: true}
	added, err := svc.Add(ctx, pdf)
	require.NoError(t, err)
	assert.Equal(t, 1, added.Number)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, added, got)
	assert.Contains(t, got.Description, "Protected: true\nType: PDF")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Entry{*got}, list.Items)
}

func TestRegisterMetrics(t *testing.T) {
	ctx := context.Background()
	promReg := prometheus.NewRegistry()
	reg := memory.New()

	m, err := RegisterMetrics(promReg, reg)
	require.NoError(t, err)

	svc := NewCatalogService(reg, m)
	_, err = svc.Add(ctx, model.TxtDocument{Encoding: "UTF-8"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, model.TxtDocument{Encoding: "ASCII"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, model.HtmlDocument{Version: "HTML5"})
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.addedTotal.WithLabelValues("txt")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.addedTotal.WithLabelValues("html")))

	mfs, err := promReg.Gather()
	require.NoError(t, err)
	var size float64
	for _, mf := range mfs {
		if mf.GetName() == "catalog_documents" {
			size = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, float64(3), size)

	_, err = RegisterMetrics(promReg, reg)
	assert.Error(t, err, "duplicate registration must fail")
}
