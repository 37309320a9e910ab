package insight

import (
	"testing"

	"github.com/stridecare/recovery/internal/domain/assessment"
)

func intPtr(v int) *int { return &v }

func boundedEntry(id string, bounds ...MetricBound) *RecoveryInsight {
	return &RecoveryInsight{ID: id, Title: id, Points: 10, Bounds: bounds}
}

func snapshot(vas, confidence, stress int) *assessment.Assessment {
	return &assessment.Assessment{VAS: vas, Confidence: confidence, Stress: stress}
}

func matchIDs(catalog *Catalog, a *assessment.Assessment, completed map[string]bool) []string {
	var ids []string
	for _, e := range Match(catalog, a, completed) {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestMatch_InclusiveBounds(t *testing.T) {
	catalog := NewCatalog(boundedEntry("mid-vas", MetricBound{Metric: "vas", Min: intPtr(3), Max: intPtr(7)}))

	tests := []struct {
		vas  int
		want bool
	}{
		{3, true},  // lower edge included
		{7, true},  // upper edge included
		{2, false}, // just below
		{8, false}, // just above
		{5, true},
	}
	for _, tt := range tests {
		got := matchIDs(catalog, snapshot(tt.vas, 5, 1), nil)
		matched := len(got) == 1
		if matched != tt.want {
			t.Errorf("vas=%d: matched=%v, want %v", tt.vas, matched, tt.want)
		}
	}
}

func TestMatch_HalfOpenBounds(t *testing.T) {
	catalog := NewCatalog(
		boundedEntry("min-only", MetricBound{Metric: "confidence", Min: intPtr(6)}),
		boundedEntry("max-only", MetricBound{Metric: "stress", Max: intPtr(1)}),
	)

	got := matchIDs(catalog, snapshot(5, 8, 0), nil)
	if len(got) != 2 {
		t.Fatalf("expected both entries, got %v", got)
	}
	got = matchIDs(catalog, snapshot(5, 3, 3), nil)
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}

func TestMatch_NoBoundsAlwaysMatches(t *testing.T) {
	catalog := NewCatalog(boundedEntry("everyone"))
	if got := matchIDs(catalog, snapshot(10, 0, 3), nil); len(got) != 1 {
		t.Errorf("unbounded entry should always match, got %v", got)
	}
}

func TestMatch_AllBoundsMustHold(t *testing.T) {
	catalog := NewCatalog(boundedEntry("strict",
		MetricBound{Metric: "vas", Min: intPtr(0), Max: intPtr(5)},
		MetricBound{Metric: "confidence", Min: intPtr(5), Max: intPtr(10)},
	))
	if got := matchIDs(catalog, snapshot(4, 6, 1), nil); len(got) != 1 {
		t.Errorf("both bounds hold, expected match: %v", got)
	}
	if got := matchIDs(catalog, snapshot(4, 3, 1), nil); len(got) != 0 {
		t.Errorf("one bound fails, expected no match: %v", got)
	}
}

func TestMatch_MissingMetricValue(t *testing.T) {
	catalog := NewCatalog(boundedEntry("needs-pcs4",
		MetricBound{Metric: "pcs4", Min: intPtr(0), Max: intPtr(16)}))

	// pcs4 never reported: withhold the entry.
	if got := matchIDs(catalog, snapshot(4, 6, 1), nil); len(got) != 0 {
		t.Errorf("missing metric should not match: %v", got)
	}

	a := snapshot(4, 6, 1)
	a.PCS4 = intPtr(8)
	if got := matchIDs(catalog, a, nil); len(got) != 1 {
		t.Errorf("reported metric in range should match: %v", got)
	}
}

func TestMatch_ExcludesCompleted(t *testing.T) {
	catalog := NewCatalog(boundedEntry("a"), boundedEntry("b"))
	got := matchIDs(catalog, snapshot(4, 6, 1), map[string]bool{"a": true})
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("completed entry should be excluded: %v", got)
	}
}

func TestMatch_PreservesCatalogOrder(t *testing.T) {
	catalog := NewCatalog(boundedEntry("first"), boundedEntry("second"), boundedEntry("third"))
	got := matchIDs(catalog, snapshot(4, 6, 1), nil)
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed: got %v, want %v", got, want)
		}
	}
}
