package models

// PriceRecord represents a single observed market price loaded from the
// dataset. Records are immutable after load; Date is kept as the raw string
// from the file because rows with unparseable dates are still usable for the
// median fallback.
type PriceRecord struct {
	State    string  `json:"state"`
	District string  `json:"district"`
	Market   string  `json:"market"`
	Crop     string  `json:"crop"`
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
}
