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
	homeRenderTotal          atomic.Uint64
	resumeDownloadTotal      atomic.Uint64
	resumeNotFoundTotal      atomic.Uint64
	resumeDownloadBytesTotal atomic.Uint64

	resumeDownloadDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncHomeRender increments the homepage render counter.
func IncHomeRender() {
	homeRenderTotal.Add(1)
}

// IncResumeDownload increments the served resume counter.
func IncResumeDownload() {
	resumeDownloadTotal.Add(1)
}

// IncResumeNotFound increments the missing resume counter.
func IncResumeNotFound() {
	resumeNotFoundTotal.Add(1)
}

// AddResumeDownloadBytes adds streamed body bytes to the total.
func AddResumeDownloadBytes(n int64) {
	if n <= 0 {
		return
	}
	resumeDownloadBytesTotal.Add(uint64(n))
}

// ObserveResumeDownloadDurationMs records a download duration in milliseconds.
func ObserveResumeDownloadDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	resumeDownloadDuration.Observe(value)
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
	writeCounter(&buf, "home_render_total", "Total homepage renders", homeRenderTotal.Load())
	writeCounter(&buf, "resume_download_total", "Total resume downloads served", resumeDownloadTotal.Load())
	writeCounter(&buf, "resume_not_found_total", "Total resume requests with no file on disk", resumeNotFoundTotal.Load())
	writeCounter(&buf, "resume_download_bytes_total", "Total resume bytes streamed", resumeDownloadBytesTotal.Load())
	writeHistogram(&buf, "resume_download_duration_ms", "Resume download duration in milliseconds", resumeDownloadDuration.Snapshot())
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
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
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
