package models

// Provenance tags for the current price in a prediction response.
const (
	MethodMockData  = "mock-data"
	MethodSynthetic = "synthetic"
)

// PredictRequest represents a price prediction request
type PredictRequest struct {
	State    string `json:"state" binding:"required,nospaces" example:"Andhra Pradesh"`
	District string `json:"district" example:"Visakhapatnam"`
	Market   string `json:"market" example:"Main Market"`
	Crop     string `json:"crop" binding:"required,nospaces" example:"Tomato"`
	Month    string `json:"month" binding:"required,yearmonth" example:"2025-12"`
}

// PredictResponse represents a price prediction result. Prices are rounded
// to two decimal places.
type PredictResponse struct {
	State          string  `json:"state"`
	District       string  `json:"district"`
	Market         string  `json:"market"`
	Crop           string  `json:"crop"`
	Month          string  `json:"month"`
	Unit           string  `json:"unit" example:"kg"`
	CurrentPrice   float64 `json:"currentPrice" example:"18.00"`
	PredictedPrice float64 `json:"predictedPrice" example:"19.25"`
	Method         string  `json:"method" example:"mock-data"`
}
