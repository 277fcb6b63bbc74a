package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind name does not match any document kind.
var ErrUnknownKind = errors.New("unknown document kind")

// Kind identifies a document variant.
type Kind string

const (
	KindWord  Kind = "word"
	KindPdf   Kind = "pdf"
	KindExcel Kind = "excel"
	KindTxt   Kind = "txt"
	KindHtml  Kind = "html"
)

// Kinds lists every document kind in display order.
func Kinds() []Kind {
	return []Kind{KindWord, KindPdf, KindExcel, KindTxt, KindHtml}
}

// Tag returns the type tag printed on the last line of a description.
func (k Kind) Tag() string {
	switch k {
	case KindWord:
		return "MS Word"
	case KindPdf:
		return "PDF"
	case KindExcel:
		return "MS Excel"
	case KindTxt:
		return "TXT"
	case KindHtml:
		return "HTML"
	default:
		return ""
	}
}

// ParseKind resolves a kind name, ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k.Tag() == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}
