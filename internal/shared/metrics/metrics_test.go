package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesExtractionCounters(t *testing.T) {
	ObserveExtraction("dutch", 3)
	ObserveExtraction("", 0.5)
	IncImportCompleted()
	IncImportFailed()
	IncRateLimited("EXTRACT")
	IncPanic()

	out := Render()
	for _, want := range []string{
		`linkedin_extractions_total{strategy="dutch"}`,
		`linkedin_extractions_total{strategy="none"}`,
		"portfolio_imports_completed_total",
		"portfolio_imports_failed_total",
		`linkedin_extraction_duration_ms_bucket{le="+Inf"}`,
		`http_rate_limited_total{group="EXTRACT"} `,
		"http_panics_total ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{1, 10})
	h.Observe(0.5)
	h.Observe(5)
	h.Observe(50)

	snap := h.Snapshot()
	var cumulative uint64
	for i := range snap.buckets {
		cumulative += snap.counts[i]
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("expected one observation per bucket, got %v", snap.counts)
	}
	if cumulative != 2 || snap.count != 3 {
		t.Fatalf("unexpected totals: cumulative=%d count=%d", cumulative, snap.count)
	}
}
