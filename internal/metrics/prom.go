// Package metrics adapts vis.Stats to Prometheus collectors, registered
// against a caller-supplied registry so multiple Editors (or tests) don't
// collide on prometheus.DefaultRegisterer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nsf/vis"
)

// Recorder is a vis.MetricsRecorder backed by Prometheus gauges.
type Recorder struct {
	pieces      prometheus.Gauge
	appendBytes prometheus.Gauge
	undoDepth   prometheus.Gauge
	redoDepth   prometheus.Gauge
}

// New builds a Recorder and registers its collectors with reg. Passing
// nil uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		pieces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vis",
			Subsystem: "editor",
			Name:      "pieces",
			Help:      "Number of pieces currently active in the document sequence.",
		}),
		appendBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vis",
			Subsystem: "editor",
			Name:      "append_buffer_bytes",
			Help:      "Total capacity of heap-allocated append buffers owned by the editor.",
		}),
		undoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vis",
			Subsystem: "editor",
			Name:      "undo_depth",
			Help:      "Number of actions currently on the undo stack.",
		}),
		redoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vis",
			Subsystem: "editor",
			Name:      "redo_depth",
			Help:      "Number of actions currently on the redo stack.",
		}),
	}
	reg.MustRegister(r.pieces, r.appendBytes, r.undoDepth, r.redoDepth)
	return r
}

// Observe implements vis.MetricsRecorder.
func (r *Recorder) Observe(s vis.Stats) {
	r.pieces.Set(float64(s.Pieces))
	r.appendBytes.Set(float64(s.AppendBufferBytes))
	r.undoDepth.Set(float64(s.UndoDepth))
	r.redoDepth.Set(float64(s.RedoDepth))
}
