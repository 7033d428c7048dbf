package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	comparisonStartedTotal  atomic.Uint64
	comparisonAITotal       atomic.Uint64
	comparisonFallbackTotal atomic.Uint64
	resumeParseTotal        atomic.Uint64
	resumeParseFailedTotal  atomic.Uint64

	comparisonDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncComparisonStarted increments the started counter.
func IncComparisonStarted() {
	comparisonStartedTotal.Add(1)
}

// IncComparisonAI increments the counter for comparisons served by the model.
func IncComparisonAI() {
	comparisonAITotal.Add(1)
}

// IncComparisonFallback increments the counter for comparisons served by the keyword scorer.
func IncComparisonFallback() {
	comparisonFallbackTotal.Add(1)
}

// IncResumeParse increments the resume parse counter.
func IncResumeParse() {
	resumeParseTotal.Add(1)
}

// IncResumeParseFailed increments the resume parse failure counter.
func IncResumeParseFailed() {
	resumeParseFailedTotal.Add(1)
}

// ObserveComparisonDurationMs records a comparison duration in milliseconds.
func ObserveComparisonDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	comparisonDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "comparison_started_total", "Total comparisons started", comparisonStartedTotal.Load())
	writeCounter(&buf, "comparison_ai_total", "Total comparisons completed via the model", comparisonAITotal.Load())
	writeCounter(&buf, "comparison_fallback_total", "Total comparisons completed via the keyword fallback", comparisonFallbackTotal.Load())
	writeCounter(&buf, "resume_parse_total", "Total resume parses requested", resumeParseTotal.Load())
	writeCounter(&buf, "resume_parse_failed_total", "Total resume parses failed", resumeParseFailedTotal.Load())
	writeHistogram(&buf, "comparison_duration_ms", "Comparison duration in milliseconds", comparisonDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
