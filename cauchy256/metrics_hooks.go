package cauchy256

import "github.com/vawlt/cauchy256/cauchy256/metrics"

func metricsEncodeObserved(k, m int) {
	metrics.ObserveEncode(k, m)
}

func metricsDecodeObserved(k, m, missingCount int) {
	metrics.ObserveDecode(k, m, missingCount)
}

func metricsDecodeFailed(kind ErrorKind) {
	metrics.ObserveDecodeFailure(kind.String())
}
