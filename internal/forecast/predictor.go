// Package forecast implements the price prediction model: a monthly
// multiplicative random walk whose volatility depends on the crop, plus a
// small deterministic upward bias.
package forecast

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Monthly volatility coefficients by crop category.
const (
	lowVolatility     = 0.02
	mediumVolatility  = 0.06
	highVolatility    = 0.12
	defaultVolatility = 0.05

	// monthlyBias is the deterministic upward drift applied per month.
	monthlyBias = 0.01
	// priceFloor keeps walked prices positive.
	priceFloor = 0.01
)

// Crop categories are matched by substring, so "basmati rice" is low
// volatility. Checked in order: low, medium, high.
var (
	lowVolatilityCrops    = []string{"rice", "wheat", "maize", "paddy"}
	mediumVolatilityCrops = []string{"onion", "tomato", "potato", "capsicum", "brinjal"}
	highVolatilityCrops   = []string{"tomato", "onion"}
)

// Predictor produces future price estimates from a current price. The random
// source is injected so tests can seed it.
type Predictor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPredictor creates a predictor using the given random source. A nil rng
// gets a time-seeded source.
func NewPredictor(rng *rand.Rand) *Predictor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Predictor{rng: rng}
}

// Volatility returns the monthly volatility coefficient for a crop.
func Volatility(crop string) float64 {
	c := strings.ToLower(crop)
	switch {
	case containsAny(c, lowVolatilityCrops):
		return lowVolatility
	case containsAny(c, mediumVolatilityCrops):
		return mediumVolatility
	case containsAny(c, highVolatilityCrops):
		// Both high-volatility crops also appear in the medium list, which
		// is checked first, so this branch never fires. Kept as-is rather
		// than silently reordering the categories.
		return highVolatility
	}
	return defaultVolatility
}

// Predict walks currentPrice forward monthsAhead months. Each step multiplies
// the price by (1 + change) with change drawn from a normal distribution of
// mean 0 and standard deviation Volatility(crop), floored at priceFloor.
// The bias multiplier and two-place rounding are applied even when
// monthsAhead is 0, which leaves the price unchanged apart from rounding.
func (p *Predictor) Predict(currentPrice float64, monthsAhead int, crop string) float64 {
	volatility := Volatility(crop)
	price := currentPrice

	// rand.Rand is not safe for concurrent use.
	p.mu.Lock()
	for i := 0; i < monthsAhead; i++ {
		change := p.rng.NormFloat64() * volatility
		price *= 1 + change
		if price < priceFloor {
			price = priceFloor
		}
	}
	p.mu.Unlock()

	price *= 1 + monthlyBias*float64(monthsAhead)
	return Round2(price)
}

// Round2 rounds a price to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
