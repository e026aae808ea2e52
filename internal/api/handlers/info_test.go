package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"futurecrop/internal/api/handlers"
	"futurecrop/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoHandler(t *testing.T) {
	router := gin.New()
	router.GET("/", handlers.NewInfoHandler().Info)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ServiceInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FutureCrop Prediction API", resp.App)
	assert.Equal(t, "0.1", resp.Version)
	assert.Contains(t, resp.Endpoints, "/predict (POST)")
}
