package models

import "time"

// HealthResponse represents the response from the health check endpoint
type HealthResponse struct {
	Status string    `json:"status" example:"healthy"`
	Time   time.Time `json:"time" example:"2024-03-20T13:00:00Z"`
	// Records is the number of price records loaded at startup.
	Records int `json:"records" example:"1000"`
	// Mode is "mock-data" when a dataset is loaded, "synthetic-only" otherwise.
	Mode string `json:"mode" example:"mock-data"`
}
