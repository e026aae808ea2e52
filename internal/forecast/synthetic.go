package forecast

import "strings"

// basePrices is the synthetic fallback table used when the dataset has no
// usable record for a crop. Prices are per kg.
var basePrices = map[string]float64{
	"tomato": 18.0,
	"onion":  22.0,
	"potato": 15.0,
	"rice":   30.0,
	"wheat":  25.0,
	"maize":  20.0,
	"banana": 30.0,
	"mango":  50.0,
}

// BasePrice returns the synthetic baseline price for a crop. Crops outside
// the table get a uniformly random price in [10, 40).
func (p *Predictor) BasePrice(crop string) float64 {
	if base, ok := basePrices[strings.ToLower(crop)]; ok {
		return base
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return 10 + p.rng.Float64()*30
}
