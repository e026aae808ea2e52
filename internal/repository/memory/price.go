// Package memory provides an in-memory price repository backed by an
// optional CSV dataset loaded once at startup. The record slice is never
// mutated after load, so it is safe for concurrent readers without locking.
package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"futurecrop/internal/models"
	"futurecrop/internal/repository"
)

const dateLayout = "2006-01-02"

// PriceRepository holds the loaded dataset
type PriceRepository struct {
	records []models.PriceRecord
}

// NewPriceRepository creates a repository over an already-loaded record set
func NewPriceRepository(records []models.PriceRecord) *PriceRepository {
	return &PriceRepository{records: records}
}

// Count returns the number of loaded records
func (r *PriceRepository) Count() int {
	return len(r.records)
}

// FindRecent returns the best matching record for the filter.
//
// Matching cascades: crop and state must match (case-insensitive); district
// and market only narrow the search when both the filter value and the
// record's field are non-empty. If nothing matches, the filters relax to a
// crop-only pass over the whole dataset. Candidates with parseable dates are
// ranked newest first; if none parse, a record carrying the median of the
// positive candidate prices is synthesized from the first candidate.
func (r *PriceRepository) FindRecent(ctx context.Context, filter repository.PriceFilter) (*models.PriceRecord, error) {
	candidates := r.filter(func(rec models.PriceRecord) bool {
		if !strings.EqualFold(rec.Crop, filter.Crop) {
			return false
		}
		if filter.State != "" && !strings.EqualFold(rec.State, filter.State) {
			return false
		}
		if filter.District != "" && rec.District != "" && !strings.EqualFold(rec.District, filter.District) {
			return false
		}
		if filter.Market != "" && rec.Market != "" && !strings.EqualFold(rec.Market, filter.Market) {
			return false
		}
		return true
	})

	if len(candidates) == 0 {
		// Relax to crop-only matching across the entire dataset.
		candidates = r.filter(func(rec models.PriceRecord) bool {
			return strings.EqualFold(rec.Crop, filter.Crop)
		})
	}
	if len(candidates) == 0 {
		return nil, repository.ErrNotFound
	}

	if rec := mostRecent(candidates); rec != nil {
		return rec, nil
	}

	// No candidate has a parseable date; fall back to the median of the
	// positive prices, carried on the first candidate's fields.
	var prices []float64
	for _, rec := range candidates {
		if rec.Price > 0 {
			prices = append(prices, rec.Price)
		}
	}
	if len(prices) == 0 {
		return nil, repository.ErrNotFound
	}
	rec := candidates[0]
	rec.Price = median(prices)
	return &rec, nil
}

func (r *PriceRepository) filter(match func(models.PriceRecord) bool) []models.PriceRecord {
	var out []models.PriceRecord
	for _, rec := range r.records {
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// mostRecent returns the candidate with the newest parseable date, or nil if
// no candidate date parses. The sort is stable so ties keep dataset order.
func mostRecent(candidates []models.PriceRecord) *models.PriceRecord {
	type dated struct {
		at  time.Time
		rec models.PriceRecord
	}
	var withDates []dated
	for _, rec := range candidates {
		if at, err := time.Parse(dateLayout, rec.Date); err == nil {
			withDates = append(withDates, dated{at: at, rec: rec})
		}
	}
	if len(withDates) == 0 {
		return nil
	}
	sort.SliceStable(withDates, func(i, j int) bool {
		return withDates[i].at.After(withDates[j].at)
	})
	rec := withDates[0].rec
	return &rec
}

func median(prices []float64) float64 {
	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
