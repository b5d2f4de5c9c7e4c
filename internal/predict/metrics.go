package predict

import "github.com/prometheus/client_golang/prometheus"

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "croprecd",
			Subsystem: "predict",
			Name:      "predictions_total",
			Help:      "Total number of predictions by predicted crop",
		},
		[]string{"crop"},
	)

	predictionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "croprecd",
			Subsystem: "predict",
			Name:      "errors_total",
			Help:      "Total number of rejected or failed predictions by kind",
		},
		[]string{"kind"},
	)

	inferenceDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "croprecd",
			Subsystem: "predict",
			Name:      "inference_duration_seconds",
			Help:      "Time spent inside the classifier per prediction",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
	)

	batchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "croprecd",
			Subsystem: "predict",
			Name:      "batch_size",
			Help:      "Number of items per accepted batch",
			Buckets:   []float64{1, 5, 10, 25, 50, 75, 100},
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "croprecd",
			Subsystem: "predict",
			Name:      "cache_lookups_total",
			Help:      "Outcome cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	registryLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "croprecd",
			Subsystem: "registry",
			Name:      "loaded",
			Help:      "1 if the model artifacts are loaded, 0 otherwise",
		},
	)
)

func init() {
	prometheus.MustRegister(predictionsTotal, predictionErrorsTotal, inferenceDuration, batchSize, cacheLookups, registryLoaded)
}

// errorKind labels err for predictionErrorsTotal.
func errorKind(err error) string {
	switch {
	case IsNotLoaded(err):
		return "not_loaded"
	case IsValidation(err):
		return "validation"
	case IsUnknownCategory(err):
		return "unknown_category"
	case IsBatchTooLarge(err):
		return "batch_too_large"
	case IsPredictionFailure(err):
		return "inference"
	default:
		return "other"
	}
}
