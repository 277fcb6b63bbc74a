// Package seed provides the sample catalog contents and a YAML loader for custom ones.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"doccatalog/internal/model"
	"doccatalog/internal/service"
)

// File is the on-disk layout of a seed file.
type File struct {
	Documents []model.Spec `yaml:"documents"`
}

// Defaults returns one sample document of every kind.
func Defaults() []model.Document {
	return []model.Document{
		model.WordDocument{
			Metadata: model.Metadata{
				Name:     "Report.docx",
				Author:   "Ivanov I.I.",
				Keywords: []string{"report", "quarterly", "finance"},
				Theme:    "Finance",
				FilePath: `C:\Documents\Report.docx`,
			},
			PageCount: 7,
		},
		model.PdfDocument{
			Metadata: model.Metadata{
				Name:     "Manual.pdf",
				Author:   "Company LLC",
				Keywords: []string{"manual", "instructions", "help"},
				Theme:    "Documentation",
				FilePath: `C:\Documents\Manual.pdf`,
			},
			IsProtected: true,
		},
		model.ExcelDocument{
			Metadata: model.Metadata{
				Name:     "Data.xlsx",
				Author:   "Petrova A.S.",
				Keywords: []string{"data", "analysis", "2023"},
				Theme:    "Statistics",
				FilePath: `C:\Documents\Data.xlsx`,
			},
			SheetCount: 3,
		},
		model.TxtDocument{
			Metadata: model.Metadata{
				Name:     "Notes.txt",
				Author:   "Sidorov V.V.",
				Keywords: []string{"notes", "ideas", "development"},
				Theme:    "Personal",
				FilePath: `C:\Documents\Notes.txt`,
			},
			Encoding: "UTF-8",
		},
		model.HtmlDocument{
			Metadata: model.Metadata{
				Name:     "Site.html",
				Author:   "WebStudio",
				Keywords: []string{"html", "web", "page"},
				Theme:    "Development",
				FilePath: `C:\Documents\Site.html`,
			},
			Version: "HTML5",
		},
	}
}

// Parse decodes seed YAML and builds every listed document.
func Parse(data []byte) ([]model.Document, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	docs := make([]model.Document, 0, len(f.Documents))
	for i, spec := range f.Documents {
		doc, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("seed document %d: %w", i+1, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) ([]model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Populate adds docs to the catalog in order.
func Populate(ctx context.Context, svc service.CatalogService, docs []model.Document) error {
	for _, doc := range docs {
		if _, err := svc.Add(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
