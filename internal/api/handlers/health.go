package handlers

import (
	"net/http"
	"time"

	"futurecrop/internal/models"
	"futurecrop/internal/repository"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	repo repository.PriceRepository
}

func NewHealthHandler(repo repository.PriceRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Health godoc
// @Summary Health check
// @Description Returns the health status of the API and the size of the loaded price dataset
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	mode := models.MethodMockData
	if h.repo.Count() == 0 {
		mode = "synthetic-only"
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Time:    time.Now().UTC(),
		Records: h.repo.Count(),
		Mode:    mode,
	})
}
