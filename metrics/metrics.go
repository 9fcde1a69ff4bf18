// Package metrics exports the work done by a csvcut.Cutter as Prometheus
// counters held in a Collector-owned registry.
//
// An embedding process hands a Collector to a Cutter through
// csvcut.WithRecorder and exposes Registry with its own handler, or reads
// the counters back with Snapshot:
//
//	collector := metrics.NewCollector()
//	cutter := csvcut.NewCutter(',', sel, csvcut.WithRecorder(collector))
//	err := cutter.Cut(src, dst)
//	http.Handle("/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))
//
// Counters accumulate across every Cut fed to the same Collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "csvcut"

// Metric names as exposed by Registry, without the namespace prefix.
const (
	BytesRead    = "bytes_read_total"
	BytesWritten = "bytes_written_total"
	Rows         = "rows_total"
	Chunks       = "chunks_read_total"
)

// Collector implements csvcut.Recorder.
type Collector struct {
	registry     *prometheus.Registry
	bytesRead    prometheus.Counter
	bytesWritten prometheus.Counter
	rows         prometheus.Counter
	chunks       prometheus.Counter
}

// Stats is a point-in-time copy of a Collector's counters.
type Stats struct {
	BytesRead    uint64
	BytesWritten uint64
	Rows         uint64
	Chunks       uint64
}

// NewCollector creates a Collector with its counters registered on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      BytesRead,
			Help:      "Bytes consumed from the input stream.",
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      BytesWritten,
			Help:      "Bytes accepted for the output stream.",
		}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      Rows,
			Help:      "Row separators seen outside quoted fields.",
		}),
		chunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      Chunks,
			Help:      "Non-empty reads from the input stream.",
		}),
	}
	c.registry.MustRegister(c.bytesRead, c.bytesWritten, c.rows, c.chunks)
	return c
}

// RecordChunk adds the counters of one processed input chunk.
func (c *Collector) RecordChunk(read, written, rows int) {
	c.chunks.Inc()
	c.bytesRead.Add(float64(read))
	c.bytesWritten.Add(float64(written))
	c.rows.Add(float64(rows))
}

// Registry returns the registry holding the counters.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Snapshot gathers the registry into a Stats value.
func (c *Collector) Snapshot() (Stats, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var s Stats
	for _, mf := range families {
		v := counterValue(mf)
		switch mf.GetName() {
		case namespace + "_" + BytesRead:
			s.BytesRead = v
		case namespace + "_" + BytesWritten:
			s.BytesWritten = v
		case namespace + "_" + Rows:
			s.Rows = v
		case namespace + "_" + Chunks:
			s.Chunks = v
		}
	}
	return s, nil
}

func counterValue(mf *dto.MetricFamily) uint64 {
	var total float64
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	return uint64(total)
}
