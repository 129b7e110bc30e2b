package driving

import (
	"context"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// SynthesizeRequest asks for match-derived mappings for one spec code.
type SynthesizeRequest struct {
	SpecCode       string              `json:"spec_code"`
	DocumentFamily *string             `json:"document_family,omitempty"`
	TopN           int                 `json:"top_n,omitempty"`
	MinScore       float64             `json:"min_score,omitempty"`
	RelevanceMap   domain.RelevanceMap `json:"relevance_map,omitempty"`
}

// SynthesizeResult reports what a synthesize call did.
type SynthesizeResult struct {
	SpecCode   string `json:"spec_code"`
	Considered int    `json:"considered"` // match results evaluated
	Created    int    `json:"created"`    // new mappings persisted
}

// CreateMappingRequest creates one curated mapping by hand.
type CreateMappingRequest struct {
	SpecCodeID int64            `json:"spec_code_id"`
	SectionID  int64            `json:"section_id"`
	Relevance  domain.Relevance `json:"relevance"`
	Notes      string           `json:"notes,omitempty"`
}

// MappingService persists curated mappings. Synthesis is a deliberate
// administrative action, never triggered implicitly by search.
type MappingService interface {
	// Synthesize runs the keyword matcher for the spec code and
	// persists the accepted matches as mappings, skipping pairs that
	// already exist. All inserts for one call commit atomically.
	Synthesize(ctx context.Context, req SynthesizeRequest) (*SynthesizeResult, error)

	// Create persists a single curator-supplied mapping
	Create(ctx context.Context, req CreateMappingRequest) (*domain.Mapping, error)
}
