package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

const (
	ngramMin    = 1
	ngramMax    = 3
	maxFeatures = 5000
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// vector is a sparse TF-IDF vector keyed by vocabulary index.
type vector map[int]float64

// Vectorizer fits a TF-IDF vocabulary from a corpus and transforms
// arbitrary text into sparse weighted vectors. Configuration is fixed:
// case-insensitive, English stop words removed, word n-grams of length
// 1 to 3, vocabulary capped at the 5000 most frequent terms. Fitting
// happens once per corpus; transforms use the frozen vocabulary.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
	fitted     bool
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		vocabulary: make(map[string]int),
	}
}

// Fit builds the vocabulary and IDF weights from the corpus texts.
func (v *Vectorizer) Fit(texts []string) error {
	if len(texts) == 0 {
		return domain.ErrEmptyCorpus
	}

	// Document frequency and corpus-wide term frequency per n-gram.
	df := make(map[string]int)
	tf := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, term := range extractTerms(text) {
			tf[term]++
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	// Cap the vocabulary at the heaviest terms. Ordered by corpus
	// frequency, alphabetical when equal, so fits are deterministic.
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if tf[terms[i]] != tf[terms[j]] {
			return tf[terms[i]] > tf[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(texts))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF, never zero.
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.fitted = true
	return nil
}

// Transform converts text into a sparse L2-normalized TF-IDF vector
// using the vocabulary frozen at fit time. Terms outside the
// vocabulary are ignored. Returns domain.ErrNotFitted before Fit.
func (v *Vectorizer) Transform(text string) (vector, error) {
	if !v.fitted {
		return nil, domain.ErrNotFitted
	}

	vec := make(vector)
	for _, term := range extractTerms(text) {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx]++
		}
	}
	for idx, count := range vec {
		vec[idx] = count * v.idf[idx]
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec, nil
}

// VocabularySize returns the number of fitted terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// extractTerms lowercases, tokenizes, drops stop words and expands the
// remaining tokens into n-grams of 1 to 3 words.
func extractTerms(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := vectorStopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, len(tokens)*ngramMax)
	for n := ngramMin; n <= ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
