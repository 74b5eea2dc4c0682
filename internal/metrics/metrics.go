// Package metrics wires the transmitter's runtime counters into
// github.com/prometheus/client_golang, upgrading the teacher's
// hand-rolled pkg/metrics/prometheus.go text exporter to the registry
// + promhttp.Handler pattern used by USA-RedDragon/DMRHub's
// internal/metrics package.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the domain counters this transmitter exposes: bursts
// generated by kind, FEC decode failures by kind, and per-channel
// encode latency.
type Metrics struct {
	BurstsGenerated   *prometheus.CounterVec
	FECDecodeFailures *prometheus.CounterVec
	ChannelEncodeTime *prometheus.HistogramVec
}

// NewMetrics constructs and registers the collectors against the
// default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		BurstsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tetra_bursts_generated_total",
			Help: "Total downlink bursts generated, by burst kind (sync, normal)",
		}, []string{"kind"}),
		FECDecodeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tetra_fec_decode_failures_total",
			Help: "Total FEC decode failures, by failure kind (block_crc, reed_muller)",
		}, []string{"kind"}),
		ChannelEncodeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tetra_channel_encode_duration_seconds",
			Help:    "Duration of a single logical-channel type1->type5 encode",
			Buckets: prometheus.DefBuckets,
		}, []string{"channel"}),
	}
	m.register()
	return m
}

func (m *Metrics) register() {
	prometheus.MustRegister(m.BurstsGenerated)
	prometheus.MustRegister(m.FECDecodeFailures)
	prometheus.MustRegister(m.ChannelEncodeTime)
}

// RecordBurst increments the burst counter for kind ("sync" or
// "normal").
func (m *Metrics) RecordBurst(kind string) {
	m.BurstsGenerated.WithLabelValues(kind).Inc()
}

// RecordFECFailure increments the FEC failure counter for kind
// ("block_crc" or "reed_muller").
func (m *Metrics) RecordFECFailure(kind string) {
	m.FECDecodeFailures.WithLabelValues(kind).Inc()
}

// RecordChannelEncode observes the duration (in seconds) of one
// logical-channel encode.
func (m *Metrics) RecordChannelEncode(channel string, seconds float64) {
	m.ChannelEncodeTime.WithLabelValues(channel).Observe(seconds)
}
