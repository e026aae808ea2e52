package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"futurecrop/internal/api/routes"
	"futurecrop/internal/config"
	"futurecrop/internal/forecast"
	"futurecrop/internal/repository/memory"
	"futurecrop/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := &config.Config{}
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.Window = 60
	cfg.RateLimit.Burst = 50

	return routes.SetupRoutes(cfg, memory.NewPriceRepository(nil), forecast.NewPredictor(nil))
}

func TestSetupRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "Service Info", method: "GET", path: "/", wantStatus: http.StatusOK},
		{name: "Health", method: "GET", path: "/health", wantStatus: http.StatusOK},
		{name: "Predict Without Body", method: "POST", path: "/predict", wantStatus: http.StatusBadRequest},
		{name: "Unknown Route", method: "GET", path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSetupRoutesCORS(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/predict", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
