package domain

import (
	"fmt"
	"strings"
)

// SpecCode represents a CSI MasterFormat specification code.
// Records are created by the ingestion tooling and are read-only here.
type SpecCode struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"` // e.g. "22 40 00"
	Division    int     `json:"division"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// SearchText builds the query text used for fallback matching.
// The title carries the most signal, so it is repeated to outweigh
// the code and description.
func (c *SpecCode) SearchText() string {
	parts := make([]string, 0, 5)
	if c.Code != "" {
		parts = append(parts, c.Code)
	}
	if c.Title != "" {
		parts = append(parts, c.Title, c.Title, c.Title)
	}
	if c.Description != nil && *c.Description != "" {
		parts = append(parts, *c.Description)
	}
	return strings.Join(parts, " ")
}

// CodeDocument represents a code publication (e.g. IPC 2024).
// The (family, year, jurisdiction) triple is unique; a nil
// jurisdiction means the model code rather than a local adoption.
type CodeDocument struct {
	ID           int64   `json:"id"`
	Family       string  `json:"family"` // IBC, IRC, IPC, ...
	Year         int     `json:"year"`
	Jurisdiction *string `json:"jurisdiction,omitempty"`
	Title        string  `json:"title"`
	SourceURL    string  `json:"source_url"`
}

// CodeSection represents one section of regulatory text within a
// CodeDocument. Document is always resolved by the store before the
// section reaches the core.
type CodeSection struct {
	ID          int64         `json:"id"`
	DocumentID  int64         `json:"document_id"`
	Number      string        `json:"number"` // e.g. "403.1"
	Title       string        `json:"title"`
	Chapter     *int          `json:"chapter,omitempty"`
	Description *string       `json:"description,omitempty"`
	SourceURL   string        `json:"source_url"`
	Document    *CodeDocument `json:"document,omitempty"`
}

// SearchText builds the searchable text for a section. The title is
// included twice to double its lexical weight; missing optional
// fields are omitted rather than padded.
func (s *CodeSection) SearchText() string {
	parts := make([]string, 0, 5)
	if s.Number != "" {
		parts = append(parts, s.Number)
	}
	if s.Title != "" {
		parts = append(parts, s.Title, s.Title)
	}
	if s.Chapter != nil {
		parts = append(parts, fmt.Sprintf("chapter %d", *s.Chapter))
	}
	if s.Description != nil && *s.Description != "" {
		parts = append(parts, *s.Description)
	}
	return strings.Join(parts, " ")
}
