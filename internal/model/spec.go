package model

// Spec is the flat, serialisable form of a document of any kind.
// Only the field belonging to Kind is read when building; the others are ignored.
type Spec struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Name        string   `json:"name" yaml:"name"`
	Author      string   `json:"author" yaml:"author"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Theme       string   `json:"theme" yaml:"theme"`
	FilePath    string   `json:"file_path" yaml:"file_path"`
	PageCount   int      `json:"page_count,omitempty" yaml:"page_count,omitempty"`
	IsProtected bool     `json:"is_protected,omitempty" yaml:"is_protected,omitempty"`
	SheetCount  int      `json:"sheet_count,omitempty" yaml:"sheet_count,omitempty"`
	Encoding    string   `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
}

// Build constructs the document variant named by s.Kind.
func (s Spec) Build() (Document, error) {
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	meta := Metadata{
		Name:     s.Name,
		Author:   s.Author,
		Keywords: append([]string(nil), s.Keywords...),
		Theme:    s.Theme,
		FilePath: s.FilePath,
	}
	switch kind {
	case KindWord:
		return WordDocument{Metadata: meta, PageCount: s.PageCount}, nil
	case KindPdf:
		return PdfDocument{Metadata: meta, IsProtected: s.IsProtected}, nil
	case KindExcel:
		return ExcelDocument{Metadata: meta, SheetCount: s.SheetCount}, nil
	case KindTxt:
		return TxtDocument{Metadata: meta, Encoding: s.Encoding}, nil
	default:
		return HtmlDocument{Metadata: meta, Version: s.Version}, nil
	}
}

// SpecOf flattens a document back into its serialisable form.
func SpecOf(doc Document) Spec {
	m := doc.Meta()
	s := Spec{
		Kind:     string(doc.Kind()),
		Name:     m.Name,
		Author:   m.Author,
		Keywords: append([]string(nil), m.Keywords...),
		Theme:    m.Theme,
		FilePath: m.FilePath,
	}
	switch d := doc.(type) {
	case WordDocument:
		s.PageCount = d.PageCount
	case PdfDocument:
		s.IsProtected = d.IsProtected
	case ExcelDocument:
		s.SheetCount = d.SheetCount
	case TxtDocument:
		s.Encoding = d.Encoding
	case HtmlDocument:
		s.Version = d.Version
	}
	return s
}
