package handlers

import (
	"net/http"

	"futurecrop/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	appName    = "FutureCrop Prediction API"
	appVersion = "0.1"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// Info godoc
// @Summary Service metadata
// @Description Returns the service name, version and endpoint list
// @Tags info
// @Produce json
// @Success 200 {object} models.ServiceInfo
// @Router / [get]
func (h *InfoHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceInfo{
		App:     appName,
		Version: appVersion,
		Endpoints: []string{
			"/predict (POST)",
			"/health (GET)",
		},
	})
}
