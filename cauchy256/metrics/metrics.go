// Package metrics exposes Prometheus collectors for cauchy256 encode/
// decode call sites. It is entirely passive: cauchy256 updates the
// counters from Encode and Decode, and nothing observes them unless the
// caller registers them with a prometheus.Registerer, following the
// instrumentation style of production erasure-coding services that
// expose call counters and latency histograms without coupling codec
// correctness to whether anything scrapes them.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// EncodeTotal counts completed Encode calls.
	EncodeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cauchy256",
		Name:      "encode_total",
		Help:      "Total number of Encode calls.",
	})

	// DecodeTotal counts completed Decode calls, including no-op
	// decodes where no blocks were missing.
	DecodeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cauchy256",
		Name:      "decode_total",
		Help:      "Total number of Decode calls.",
	})

	// DecodeFailures counts Decode calls that returned an error,
	// labeled by the ErrorKind string.
	DecodeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cauchy256",
		Name:      "decode_failures_total",
		Help:      "Total number of failed Decode calls, by error kind.",
	}, []string{"kind"})

	// EncodeDuration and DecodeDuration are left unstarted by the core
	// (no per-byte overhead); a wrapping layer may time calls and
	// observe into these.
	EncodeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cauchy256",
		Name:      "encode_duration_seconds",
		Help:      "Encode call latency in seconds.",
	})

	DecodeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cauchy256",
		Name:      "decode_duration_seconds",
		Help:      "Decode call latency in seconds.",
	})
)

// MustRegister registers all cauchy256 collectors with reg. Callers own
// their registry; the core package never registers these on its own.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(EncodeTotal, DecodeTotal, DecodeFailures, EncodeDuration, DecodeDuration)
}

// ObserveEncode records one Encode call for k data / m recovery blocks.
func ObserveEncode(k, m int) {
	_ = k
	_ = m
	EncodeTotal.Inc()
}

// ObserveDecode records one Decode call; missingCount is the number of
// data blocks that were reconstructed (0 for a no-op decode).
func ObserveDecode(k, m, missingCount int) {
	_ = k
	_ = m
	_ = missingCount
	DecodeTotal.Inc()
}

// ObserveDecodeFailure records a failed Decode call labeled by kind.
func ObserveDecodeFailure(kind string) {
	DecodeFailures.WithLabelValues(kind).Inc()
}
