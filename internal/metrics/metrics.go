// SPDX-License-Identifier: EPL-2.0

// Package metrics holds the Prometheus instruments for exports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of ExportsTotal.
const (
	ResultOK      = "ok"
	ResultDecode  = "decode_error"
	ResultRange   = "range_error"
	ResultRender  = "render_error"
	ResultEncode  = "encode_error"
	ResultDeliver = "deliver_error"
)

// Metrics contains the export instruments. A nil *Metrics records nothing.
type Metrics struct {
	ExportsTotal   *prometheus.CounterVec
	ExportDuration prometheus.Histogram
	ExportBytes    prometheus.Histogram
	DecodesTotal   *prometheus.CounterVec
}

// NewMetrics creates the instruments and registers them on reg. It panics
// if they are already registered there.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ExportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Total number of export requests by result",
		}, []string{"result"}),
		ExportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Time from export request to delivery",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}),
		ExportBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_bytes",
			Help:      "Size of delivered WAV files in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10), // 1KB to ~256MB
		}),
		DecodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decodes_total",
			Help:      "Total number of decoded inputs by format and result",
		}, []string{"format", "result"}),
	}
}

// RecordExport counts one export. Size is only observed for successful ones.
func (m *Metrics) RecordExport(result string, seconds float64, size int) {
	if m == nil {
		return
	}

	m.ExportsTotal.WithLabelValues(result).Inc()
	m.ExportDuration.Observe(seconds)

	if result == ResultOK {
		m.ExportBytes.Observe(float64(size))
	}
}

func (m *Metrics) RecordDecode(format, result string) {
	if m == nil {
		return
	}

	m.DecodesTotal.WithLabelValues(format, result).Inc()
}
