package domain

import "testing"

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Confidence
	}{
		{1.0, ConfidenceHigh},
		{0.5, ConfidenceHigh},
		{0.49999, ConfidenceMedium},
		{0.3, ConfidenceMedium},
		{0.29999, ConfidenceLow},
		{0.15, ConfidenceLow},
		{0.14999, ConfidenceVeryLow},
		{0.0, ConfidenceVeryLow},
	}

	for _, tt := range tests {
		if got := ClassifyScore(tt.score); got != tt.want {
			t.Errorf("ClassifyScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestConfidenceConstants(t *testing.T) {
	if ConfidenceHigh != "high" {
		t.Errorf("expected ConfidenceHigh = 'high', got %s", ConfidenceHigh)
	}
	if ConfidenceMedium != "medium" {
		t.Errorf("expected ConfidenceMedium = 'medium', got %s", ConfidenceMedium)
	}
	if ConfidenceLow != "low" {
		t.Errorf("expected ConfidenceLow = 'low', got %s", ConfidenceLow)
	}
	if ConfidenceVeryLow != "very_low" {
		t.Errorf("expected ConfidenceVeryLow = 'very_low', got %s", ConfidenceVeryLow)
	}
}
