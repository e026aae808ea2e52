package memory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"futurecrop/internal/models"
)

// Load reads price records from a CSV file with the header
// state,district,market,crop,date,price,unit. A missing file yields an empty
// dataset, not an error: the service then serves synthetic prices only.
//
// Ingestion is best-effort: string fields are trimmed, an unparseable price
// becomes 0.0 with the row kept, and a blank unit defaults to "kg".
func Load(path string) ([]models.PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var records []models.PriceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}
		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		price, err := strconv.ParseFloat(field("price"), 64)
		if err != nil {
			price = 0.0
		}
		unit := field("unit")
		if unit == "" {
			unit = "kg"
		}

		records = append(records, models.PriceRecord{
			State:    field("state"),
			District: field("district"),
			Market:   field("market"),
			Crop:     field("crop"),
			Date:     field("date"),
			Price:    price,
			Unit:     unit,
		})
	}
	return records, nil
}
