package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ServiceInfo represents the static service metadata returned from the root
// endpoint.
type ServiceInfo struct {
	App       string   `json:"app" example:"FutureCrop Prediction API"`
	Version   string   `json:"version" example:"0.1"`
	Endpoints []string `json:"endpoints"`
}
