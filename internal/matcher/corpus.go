// Package matcher implements keyword-based fallback matching between
// spec codes and code sections using TF-IDF vectors and cosine
// similarity. A Matcher is built once from a section corpus and is
// read-only afterwards; stale corpora are replaced wholesale via the
// snapshot Cache, never mutated in place.
package matcher

import (
	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// Corpus holds the sections under consideration and their derived
// searchable texts, in a stable order. It is immutable after creation.
type Corpus struct {
	Sections []*domain.CodeSection
	Texts    []string
}

// NewCorpus derives searchable text for each section. Returns
// domain.ErrEmptyCorpus when no sections are given; callers must not
// attempt vectorization on an empty corpus.
func NewCorpus(sections []*domain.CodeSection) (*Corpus, error) {
	if len(sections) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	texts := make([]string, len(sections))
	for i, section := range sections {
		texts[i] = section.SearchText()
	}

	return &Corpus{
		Sections: sections,
		Texts:    texts,
	}, nil
}

// Len returns the number of corpus members.
func (c *Corpus) Len() int {
	return len(c.Sections)
}
