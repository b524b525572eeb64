package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	predictionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scale_sense",
		Subsystem: "prediction",
		Name:      "requests_total",
		Help:      "Number of prediction requests served, labeled by predictor source.",
	}, []string{"predictor"})

	predictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "scale_sense",
		Subsystem: "prediction",
		Name:      "duration_seconds",
		Help:      "Time spent predicting and assembling plans per request.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
	})

	missingParameterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scale_sense",
		Subsystem: "validation",
		Name:      "missing_parameter_total",
		Help:      "Number of requests rejected for an absent required field, labeled by field.",
	}, []string{"field"})

	lastPredictionGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "scale_sense",
		Subsystem: "prediction",
		Name:      "last_served_timestamp_seconds",
		Help:      "Unix timestamp of the most recent prediction served.",
	})
)

func init() {
	prometheus.MustRegister(predictionsCounter, predictionDuration, missingParameterCounter, lastPredictionGauge)
}

// RecordPrediction counts a served prediction and advances the watermark.
func RecordPrediction(predictor string, elapsed time.Duration) {
	if predictor == "" {
		predictor = "unknown"
	}
	predictionsCounter.WithLabelValues(predictor).Inc()
	predictionDuration.Observe(elapsed.Seconds())
	lastPredictionGauge.Set(float64(time.Now().Unix()))
}

// RecordMissingParameter counts a rejected request by the field that was
// absent.
func RecordMissingParameter(field string) {
	if field == "" {
		return
	}
	missingParameterCounter.WithLabelValues(field).Inc()
}
