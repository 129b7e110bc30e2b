package domain

import (
	"fmt"
	"strings"
	"time"
)

// Relevance grades how strongly a mapping ties a spec code to a section.
type Relevance string

const (
	RelevancePrimary   Relevance = "primary"
	RelevanceSecondary Relevance = "secondary"
	RelevanceReference Relevance = "reference"
)

// IsValid reports whether the relevance is one of the known grades.
func (r Relevance) IsValid() bool {
	switch r {
	case RelevancePrimary, RelevanceSecondary, RelevanceReference:
		return true
	}
	return false
}

// Mapping is a curated, directed edge from a SpecCode to a CodeSection.
// At most one mapping exists per (SpecCodeID, SectionID) pair; inserts
// of an existing pair are skipped, never overwritten.
type Mapping struct {
	ID         int64     `json:"id"`
	SpecCodeID int64     `json:"spec_code_id"`
	SectionID  int64     `json:"section_id"`
	Relevance  Relevance `json:"relevance"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CuratedSection pairs a mapped section with the mapping that curates it.
type CuratedSection struct {
	Section *CodeSection `json:"section"`
	Mapping *Mapping     `json:"mapping"`
}

// RelevanceMap translates a confidence tier into a relevance grade when
// synthesizing mappings from match results.
type RelevanceMap map[Confidence]Relevance

// DefaultRelevanceMap returns the standard confidence-to-relevance table.
func DefaultRelevanceMap() RelevanceMap {
	return RelevanceMap{
		ConfidenceHigh:    RelevancePrimary,
		ConfidenceMedium:  RelevanceSecondary,
		ConfidenceLow:     RelevanceReference,
		ConfidenceVeryLow: RelevanceReference,
	}
}

// Relevance resolves a confidence tier, falling back to reference for
// anything unknown.
func (m RelevanceMap) Relevance(c Confidence) Relevance {
	if r, ok := m[c]; ok {
		return r
	}
	return RelevanceReference
}

// SynthesizedNotes renders the audit note attached to auto-generated
// mappings: the raw score to three decimals and up to three of the
// matched keywords.
func SynthesizedNotes(score float64, keywords []string) string {
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	return fmt.Sprintf("Auto-generated via keyword matching (score: %.3f, keywords: %s)",
		score, strings.Join(keywords, ", "))
}
