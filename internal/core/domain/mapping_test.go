package domain

import "testing"

func TestRelevanceIsValid(t *testing.T) {
	valid := []Relevance{RelevancePrimary, RelevanceSecondary, RelevanceReference}
	for _, r := range valid {
		if !r.IsValid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Relevance("critical").IsValid() {
		t.Error("expected 'critical' to be invalid")
	}
	if Relevance("").IsValid() {
		t.Error("expected empty relevance to be invalid")
	}
}

func TestDefaultRelevanceMap(t *testing.T) {
	m := DefaultRelevanceMap()

	tests := []struct {
		confidence Confidence
		want       Relevance
	}{
		{ConfidenceHigh, RelevancePrimary},
		{ConfidenceMedium, RelevanceSecondary},
		{ConfidenceLow, RelevanceReference},
		{ConfidenceVeryLow, RelevanceReference},
	}
	for _, tt := range tests {
		if got := m.Relevance(tt.confidence); got != tt.want {
			t.Errorf("Relevance(%s) = %s, want %s", tt.confidence, got, tt.want)
		}
	}

	// Unknown tiers fall back to reference.
	if got := m.Relevance(Confidence("unknown")); got != RelevanceReference {
		t.Errorf("Relevance(unknown) = %s, want %s", got, RelevanceReference)
	}
}

func TestSynthesizedNotes(t *testing.T) {
	notes := SynthesizedNotes(0.4239, []string{"water", "heater", "plumbing", "fixture"})

	want := "Auto-generated via keyword matching (score: 0.424, keywords: water, heater, plumbing)"
	if notes != want {
		t.Errorf("SynthesizedNotes() = %q, want %q", notes, want)
	}
}

func TestSynthesizedNotes_FewKeywords(t *testing.T) {
	notes := SynthesizedNotes(0.5, []string{"water"})

	want := "Auto-generated via keyword matching (score: 0.500, keywords: water)"
	if notes != want {
		t.Errorf("SynthesizedNotes() = %q, want %q", notes, want)
	}
}
