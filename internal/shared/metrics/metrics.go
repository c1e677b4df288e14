package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// unmatched labels extractions where no strategy found a section header.
const unmatched = "none"

var (
	importsCompletedTotal atomic.Uint64
	importsFailedTotal    atomic.Uint64

	panicsTotal           atomic.Uint64

	extractions = newLabeledCounter()
	rateLimited = newLabeledCounter()

	extractionDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 1000})
)

// ObserveExtraction records one extraction run by winning strategy.
func ObserveExtraction(strategy string, durationMs float64) {
	if strategy == "" {
		strategy = unmatched
	}
	extractions.Inc(strategy)
	if durationMs < 0 {
		durationMs = 0
	}
	extractionDuration.Observe(durationMs)
}

// IncImportCompleted increments the completed import counter.
func IncImportCompleted() {
	importsCompletedTotal.Add(1)
}

// IncImportFailed increments the failed import counter.
func IncImportFailed() {
	importsFailedTotal.Add(1)
}

// IncPanic counts a request that panicked and was recovered.
func IncPanic() {
	panicsTotal.Add(1)
}

// IncRateLimited counts a request rejected by the limiter for group.
func IncRateLimited(group string) {
	rateLimited.Inc(group)
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
	writeLabeledCounter(&buf, "linkedin_extractions_total", "Extractions by winning strategy", "strategy", extractions.Snapshot())
	writeCounter(&buf, "portfolio_imports_completed_total", "Portfolio imports stored", importsCompletedTotal.Load())
	writeCounter(&buf, "portfolio_imports_failed_total", "Portfolio imports that failed to store", importsFailedTotal.Load())
	writeLabeledCounter(&buf, "http_rate_limited_total", "Requests rejected by the rate limiter", "group", rateLimited.Snapshot())
	writeCounter(&buf, "http_panics_total", "Requests recovered from a panic", panicsTotal.Load())
	writeHistogram(&buf, "linkedin_extraction_duration_ms", "Extraction duration in milliseconds", extractionDuration.Snapshot())
	return buf.String()
}

type labeledCounter struct {
	mu     sync.Mutex
	values map[string]uint64
}

func newLabeledCounter() *labeledCounter {
	return &labeledCounter{values: make(map[string]uint64)}
}

func (l *labeledCounter) Inc(label string) {
	l.mu.Lock()
	l.values[label]++
	l.mu.Unlock()
}

func (l *labeledCounter) Snapshot() map[string]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]uint64, len(l.values))
	for k, v := range l.values {
		out[k] = v
	}
	return out
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

// Observe counts value in its smallest bucket; rendering accumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
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

func writeLabeledCounter(buf *bytes.Buffer, name, help, label string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, values[k])
	}
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
