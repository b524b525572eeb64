package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func histogramSampleCount(t *testing.T) uint64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, predictionDuration.Write(metric))
	return metric.GetHistogram().GetSampleCount()
}

func TestRecordPrediction(t *testing.T) {
	countBefore := testutil.ToFloat64(predictionsCounter.WithLabelValues("heuristic"))
	samplesBefore := histogramSampleCount(t)

	RecordPrediction("heuristic", 5*time.Millisecond)

	countAfter := testutil.ToFloat64(predictionsCounter.WithLabelValues("heuristic"))
	require.Equal(t, countBefore+1, countAfter)
	require.Equal(t, samplesBefore+1, histogramSampleCount(t))

	watermark := testutil.ToFloat64(lastPredictionGauge)
	require.InDelta(t, float64(time.Now().Unix()), watermark, 5)
}

func TestRecordPredictionDefaultsPredictorLabel(t *testing.T) {
	before := testutil.ToFloat64(predictionsCounter.WithLabelValues("unknown"))

	RecordPrediction("", time.Millisecond)

	after := testutil.ToFloat64(predictionsCounter.WithLabelValues("unknown"))
	require.Equal(t, before+1, after)
}

func TestRecordMissingParameter(t *testing.T) {
	before := testutil.ToFloat64(missingParameterCounter.WithLabelValues("age"))

	RecordMissingParameter("age")

	after := testutil.ToFloat64(missingParameterCounter.WithLabelValues("age"))
	require.Equal(t, before+1, after)
}

func TestRecordMissingParameterIgnoresEmptyField(t *testing.T) {
	RecordMissingParameter("")

	require.Zero(t, testutil.ToFloat64(missingParameterCounter.WithLabelValues("")))
}
