package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFilePredicts(t *testing.T) {
	m, err := LoadFromFile(filepath.Join("testdata", "weights.json"))
	require.NoError(t, err)

	features := make([]float64, FeatureCount)
	features[bmrIndex] = 1500
	features[activityIndex] = 2

	diet, workout, err := m.Predict(context.Background(), features)
	require.NoError(t, err)
	require.Equal(t, 1800, diet)
	require.Equal(t, 4, workout)
}

func TestLoadFromFileMissingArtifact(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadFromFileMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadFromFile(path)
	require.ErrorContains(t, err, "parse weights")
}

func TestLoadFromFileWrongCoefficientCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	payload := []byte(`{"diet":{"coefficients":[1,2,3],"intercept":0},"workout":{"coefficients":[1],"intercept":0}}`)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	_, err := LoadFromFile(path)
	require.ErrorContains(t, err, "coefficients")
}

func TestLinearModelRejectsShortVector(t *testing.T) {
	m, err := LoadFromFile(filepath.Join("testdata", "weights.json"))
	require.NoError(t, err)

	_, _, err = m.Predict(context.Background(), []float64{1})
	require.Error(t, err)
}
