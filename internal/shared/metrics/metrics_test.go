package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncComparisonStarted()
	IncComparisonAI()
	IncComparisonFallback()
	IncResumeParse()
	IncResumeParseFailed()
	ObserveComparisonDurationMs(120)

	out := Render()
	for _, name := range []string{
		"comparison_started_total",
		"comparison_ai_total",
		"comparison_fallback_total",
		"resume_parse_total",
		"resume_parse_failed_total",
		"comparison_duration_ms_bucket",
		"comparison_duration_ms_sum",
		"comparison_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing series %s in:\n%s", name, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100, 1000})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)
	h.Observe(5000) // above the last bound, counted only in +Inf

	snap := h.Snapshot()
	if snap.count != 4 {
		t.Fatalf("count = %d, want 4", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 || snap.counts[2] != 1 {
		t.Fatalf("bucket counts = %v", snap.counts)
	}
	if snap.sum != 5555 {
		t.Fatalf("sum = %v, want 5555", snap.sum)
	}
}
