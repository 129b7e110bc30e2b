package matcher

import (
	"fmt"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// Matcher ranks code sections against a spec code query. It owns one
// fitted corpus snapshot and is safe for concurrent use: nothing is
// mutated after New returns.
type Matcher struct {
	corpus     *Corpus
	vectorizer *Vectorizer
	vectors    []vector
}

// New builds a matcher over the given sections: derives the searchable
// corpus, fits the vectorizer and precomputes every corpus vector.
// Returns domain.ErrEmptyCorpus when sections is empty.
func New(sections []*domain.CodeSection) (*Matcher, error) {
	corpus, err := NewCorpus(sections)
	if err != nil {
		return nil, err
	}

	vectorizer := NewVectorizer()
	if err := vectorizer.Fit(corpus.Texts); err != nil {
		return nil, fmt.Errorf("failed to fit vectorizer: %w", err)
	}

	vectors := make([]vector, corpus.Len())
	for i, text := range corpus.Texts {
		vec, err := vectorizer.Transform(text)
		if err != nil {
			return nil, fmt.Errorf("failed to vectorize corpus member %d: %w", i, err)
		}
		vectors[i] = vec
	}

	return &Matcher{
		corpus:     corpus,
		vectorizer: vectorizer,
		vectors:    vectors,
	}, nil
}

// CorpusSize returns the number of sections in the snapshot.
func (m *Matcher) CorpusSize() int {
	return m.corpus.Len()
}

// Match returns the sections most similar to the spec code, best
// first, with confidence tiers and overlapping terms attached. Results
// below opts.MinScore are dropped entirely and at most opts.TopN are
// returned; no candidate clearing the bound yields an empty slice, not
// an error.
func (m *Matcher) Match(code *domain.SpecCode, opts domain.MatchOptions) ([]*domain.MatchResult, error) {
	queryText := code.SearchText()
	queryVec, err := m.vectorizer.Transform(queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to vectorize query: %w", err)
	}

	candidates := rank(queryVec, m.vectors, opts.TopN, opts.MinScore)

	results := make([]*domain.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, &domain.MatchResult{
			Section:      m.corpus.Sections[c.index],
			Score:        c.score,
			Confidence:   domain.ClassifyScore(c.score),
			MatchedTerms: matchedTerms(queryText, m.corpus.Texts[c.index]),
		})
	}
	return results, nil
}
