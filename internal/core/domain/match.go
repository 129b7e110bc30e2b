package domain

// Confidence buckets a raw similarity score into a discrete tier.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceLow     Confidence = "low"
	ConfidenceVeryLow Confidence = "very_low"
)

// ClassifyScore maps a cosine similarity score onto a confidence tier.
// Thresholds are half-open: 0.5 is high, anything below 0.15 is very_low.
func ClassifyScore(score float64) Confidence {
	switch {
	case score >= 0.5:
		return ConfidenceHigh
	case score >= 0.3:
		return ConfidenceMedium
	case score >= 0.15:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// MatchResult is one fallback-match candidate for a spec code. It is
// transient: results are either returned as search suggestions or fed
// to the mapping synthesizer, never persisted themselves.
type MatchResult struct {
	Section      *CodeSection `json:"section"`
	Score        float64      `json:"score"` // cosine similarity in [0,1]
	Confidence   Confidence   `json:"confidence"`
	MatchedTerms []string     `json:"matched_terms,omitempty"` // at most 5, for explanation only
}
