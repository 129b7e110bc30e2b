package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// setupTestResultCache creates a test Redis client and ResultCache
func setupTestResultCache(t *testing.T) (*ResultCache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewResultCache(client)

	return cache, mr, func() {
		client.Close()
		mr.Close()
	}
}

// createTestResult builds a fallback search result for a spec code
func createTestResult(code string) *domain.SearchResult {
	desc := "Residential plumbing fixtures"
	return &domain.SearchResult{
		SpecCode: &domain.SpecCode{
			ID:          1,
			Code:        code,
			Division:    22,
			Title:       "Plumbing Fixtures",
			Description: &desc,
		},
		Sections: []*domain.RankedSection{
			{
				Section: &domain.CodeSection{
					ID:         12,
					DocumentID: 1,
					Number:     "P2705.1",
					Title:      "Fixture connections",
				},
				Score:      0.42,
				Confidence: domain.ConfidenceMedium,
			},
		},
		TotalResults: 1,
		Source:       domain.SearchSourceFallback,
	}
}

func TestResultCacheSetGet(t *testing.T) {
	cache, _, cleanup := setupTestResultCache(t)
	defer cleanup()

	ctx := context.Background()
	result := createTestResult("22 40 00")

	if err := cache.Set(ctx, "22 40 00:::", result, 5*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "22 40 00:::")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.SpecCode.Code != "22 40 00" {
		t.Errorf("expected spec code 22 40 00, got %s", got.SpecCode.Code)
	}
	if len(got.Sections) != 1 || got.Sections[0].Score != 0.42 {
		t.Errorf("unexpected sections: %+v", got.Sections)
	}
	if got.Source != domain.SearchSourceFallback {
		t.Errorf("expected source %s, got %s", domain.SearchSourceFallback, got.Source)
	}
}

func TestResultCacheGetMiss(t *testing.T) {
	cache, _, cleanup := setupTestResultCache(t)
	defer cleanup()

	_, err := cache.Get(context.Background(), "09 91 23:::")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResultCacheExpiration(t *testing.T) {
	cache, mr, cleanup := setupTestResultCache(t)
	defer cleanup()

	ctx := context.Background()
	if err := cache.Set(ctx, "22 40 00:::", createTestResult("22 40 00"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "22 40 00:::")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestResultCacheInvalidateSpecCode(t *testing.T) {
	cache, _, cleanup := setupTestResultCache(t)
	defer cleanup()

	ctx := context.Background()
	result := createTestResult("22 40 00")

	// Two filter variants of the same spec code, one unrelated code
	if err := cache.Set(ctx, "22 40 00:::", result, 5*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cache.Set(ctx, "22 40 00:IRC:2021:", result, 5*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	other := createTestResult("09 91 23")
	if err := cache.Set(ctx, "09 91 23:::", other, 5*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := cache.InvalidateSpecCode(ctx, "22 40 00"); err != nil {
		t.Fatalf("InvalidateSpecCode failed: %v", err)
	}

	if _, err := cache.Get(ctx, "22 40 00:::"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected first variant invalidated, got %v", err)
	}
	if _, err := cache.Get(ctx, "22 40 00:IRC:2021:"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected second variant invalidated, got %v", err)
	}
	if _, err := cache.Get(ctx, "09 91 23:::"); err != nil {
		t.Errorf("expected unrelated code to survive, got %v", err)
	}
}

func TestResultCacheInvalidateUnknownCode(t *testing.T) {
	cache, _, cleanup := setupTestResultCache(t)
	defer cleanup()

	// No index set exists; invalidation is a no-op
	if err := cache.InvalidateSpecCode(context.Background(), "99 99 99"); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
