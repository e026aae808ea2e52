package memory_test

import (
	"path/filepath"
	"testing"

	"futurecrop/internal/repository/memory"
	"futurecrop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	records, err := memory.Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad(t *testing.T) {
	path := testutil.WriteDataset(t,
		[]string{" Karnataka ", "Bengaluru", "Main Market", " Tomato ", "2025-03-01", "21.50", "kg"},
		[]string{"Telangana", "", "", "Onion", "2025-02-15", "not-a-number", ""},
		[]string{"Maharashtra", "Pune", "Central Mandai", "Rice", "", "32", "quintal"},
	)

	records, err := memory.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// String fields are trimmed.
	assert.Equal(t, "Karnataka", records[0].State)
	assert.Equal(t, "Tomato", records[0].Crop)
	assert.Equal(t, 21.50, records[0].Price)
	assert.Equal(t, "kg", records[0].Unit)

	// Malformed price defaults to zero; the row is kept. Blank unit
	// defaults to kg.
	assert.Equal(t, 0.0, records[1].Price)
	assert.Equal(t, "kg", records[1].Unit)

	// Units other than kg pass through.
	assert.Equal(t, "quintal", records[2].Unit)
	assert.Equal(t, "", records[2].Date)
}

func TestLoadShortRow(t *testing.T) {
	path := testutil.WriteDataset(t,
		[]string{"Karnataka", "Bengaluru", "Main Market", "Tomato"},
	)

	records, err := memory.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Tomato", records[0].Crop)
	assert.Equal(t, 0.0, records[0].Price)
	assert.Equal(t, "kg", records[0].Unit)
}
