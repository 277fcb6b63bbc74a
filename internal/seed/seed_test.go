package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"doccatalog/internal/model"
	"doccatalog/internal/repository/memory"
	"doccatalog/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
documents:
  - kind: word
    name: Plan.docx
    author: Team
    keywords: [plan, q3]
    theme: Planning
    file_path: /docs/plan.docx
    page_count: 12
  - kind: PDF
    name: Scan.pdf
    is_protected: true
  - kind: html
    name: index.html
    version: "4.01"
`

func TestDefaults(t *testing.T) {
	docs := Defaults()

	require.Len(t, docs, len(model.Kinds()))
	for i, k := range model.Kinds() {
		assert.Equal(t, k, docs[i].Kind())
	}
	assert.Equal(t, 7, docs[0].(model.WordDocument).PageCount)
	assert.True(t, docs[1].(model.PdfDocument).IsProtected)
}

func TestParse(t *testing.T) {
	docs, err := Parse([]byte(sampleYAML))

	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, model.WordDocument{
		Metadata: model.Metadata{
			Name:     "Plan.docx",
			Author:   "Team",
			Keywords: []string{"plan", "q3"},
			Theme:    "Planning",
			FilePath: "/docs/plan.docx",
		},
		PageCount: 12,
	}, docs[0])
	assert.Equal(t, model.KindPdf, docs[1].Kind())
	assert.Contains(t, docs[2].Describe(), "Markup version: 4.01")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown kind",
			data:    "documents:\n  - kind: word\n  - kind: odt\n",
			wantErr: model.ErrUnknownKind,
			wantMsg: "seed document 2",
		},
		{
			name:    "malformed yaml",
			data:    "documents: [",
			wantMsg: "decode seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := Parse([]byte(tt.data))

			assert.Nil(t, docs)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	docs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read seed file")
}

func TestPopulate(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCatalogService(memory.New(), nil)

	require.NoError(t, Populate(ctx, svc, Defaults()))

	res, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 5, res.Items[4].Number)
	assert.Equal(t, model.KindHtml, res.Items[4].Kind)
}
