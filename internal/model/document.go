package model

import (
	"strconv"
	"strings"
)

// Metadata holds the bibliographic fields shared by every document kind.
// FilePath is stored as given; nothing opens or validates it.
type Metadata struct {
	Name     string
	Author   string
	Keywords []string
	Theme    string
	FilePath string
}

// Meta returns the shared metadata. Variants embedding Metadata inherit it.
func (m Metadata) Meta() Metadata { return m }

func (m Metadata) describe() string {
	var b strings.Builder
	b.WriteString("Name: " + m.Name + "\n")
	b.WriteString("Author: " + m.Author + "\n")
	b.WriteString("Keywords: " + strings.Join(m.Keywords, ", ") + "\n")
	b.WriteString("Theme: " + m.Theme + "\n")
	b.WriteString("File path: " + m.FilePath)
	return b.String()
}

// Document is a catalog record of one of the closed set of kinds.
type Document interface {
	Kind() Kind
	Meta() Metadata
	// Describe renders the human-readable, multi-line description.
	Describe() string
}

// withVariant appends the kind-specific line and the type tag line to the base block.
func withVariant(m Metadata, k Kind, field string) string {
	return m.describe() + "\n" + field + "\nType: " + k.Tag()
}

// WordDocument is an MS Word document.
type WordDocument struct {
	Metadata
	PageCount int
}

func (WordDocument) Kind() Kind { return KindWord }

func (d WordDocument) Describe() string {
	return withVariant(d.Metadata, KindWord, "Page count: "+strconv.Itoa(d.PageCount))
}

// PdfDocument is a PDF document.
type PdfDocument struct {
	Metadata
	IsProtected bool
}

func (PdfDocument) Kind() Kind { return KindPdf }

func (d PdfDocument) Describe() string {
	return withVariant(d.Metadata, KindPdf, "Protected: "+strconv.FormatBool(d.IsProtected))
}

// ExcelDocument is an MS Excel workbook.
type ExcelDocument struct {
	Metadata
	SheetCount int
}

func (ExcelDocument) Kind() Kind { return KindExcel }

func (d ExcelDocument) Describe() string {
	return withVariant(d.Metadata, KindExcel, "Sheet count: "+strconv.Itoa(d.SheetCount))
}

// TxtDocument is a plain text file.
type TxtDocument struct {
	Metadata
	Encoding string
}

func (TxtDocument) Kind() Kind { return KindTxt }

func (d TxtDocument) Describe() string {
	return withVariant(d.Metadata, KindTxt, "Encoding: "+d.Encoding)
}

// HtmlDocument is an HTML page.
type HtmlDocument struct {
	Metadata
	Version string
}

func (HtmlDocument) Kind() Kind { return KindHtml }

func (d HtmlDocument) Describe() string {
	return withVariant(d.Metadata, KindHtml, "Markup version: "+d.Version)
}

var (
	_ Document = WordDocument{}
	_ Document = PdfDocument{}
	_ Document = ExcelDocument{}
	_ Document = TxtDocument{}
	_ Document = HtmlDocument{}
)

// Entry is one row of a catalog listing. Number is 1-based.
type Entry struct {
	Number      int    `json:"number"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
}

// NewEntry builds the listing row for the document stored at the 0-based index.
func NewEntry(index int, doc Document) Entry {
	return Entry{Number: index + 1, Kind: doc.Kind(), Description: doc.Describe()}
}
