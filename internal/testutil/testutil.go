// Package testutil provides fixture helpers shared by tests.
package testutil

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"futurecrop/internal/forecast"
	"futurecrop/internal/models"

	"github.com/stretchr/testify/require"
)

// DatasetHeader is the column order used by dataset fixtures.
var DatasetHeader = []string{"state", "district", "market", "crop", "date", "price", "unit"}

// Record builds a PriceRecord fixture with unit "kg".
func Record(state, district, market, crop, date string, price float64) models.PriceRecord {
	return models.PriceRecord{
		State:    state,
		District: district,
		Market:   market,
		Crop:     crop,
		Date:     date,
		Price:    price,
		Unit:     "kg",
	}
}

// WriteDataset writes a CSV dataset with the standard header into a temp
// directory and returns its path.
func WriteDataset(t *testing.T, rows ...[]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prices.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(DatasetHeader))
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return path
}

// SeededPredictor returns a predictor with a deterministic random source.
func SeededPredictor(seed int64) *forecast.Predictor {
	return forecast.NewPredictor(rand.New(rand.NewSource(seed)))
}
