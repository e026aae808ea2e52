package handlers

import (
	"errors"
	"net/http"
	"time"

	"futurecrop/internal/forecast"
	"futurecrop/internal/models"
	"futurecrop/internal/repository"
	"futurecrop/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PredictHandler handles price prediction requests
type PredictHandler struct {
	repo      repository.PriceRepository
	predictor *forecast.Predictor
	now       func() time.Time
}

// NewPredictHandler creates a new PredictHandler. A nil clock defaults to
// time.Now; tests inject a fixed clock to pin monthsAhead.
func NewPredictHandler(repo repository.PriceRepository, predictor *forecast.Predictor, now func() time.Time) *PredictHandler {
	if now == nil {
		now = time.Now
	}
	return &PredictHandler{
		repo:      repo,
		predictor: predictor,
		now:       now,
	}
}

// Predict godoc
// @Summary Predict a future crop price
// @Description Looks up the most recent observed price for the given location and crop, then projects it to the target month with a random-walk model. Falls back to a synthetic baseline when the dataset has no usable record.
// @Tags predict
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Prediction request"
// @Success 200 {object} models.PredictResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body or month format"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	target, err := time.Parse(validation.MonthLayout, req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "month must be in YYYY-MM format"})
		return
	}

	// Months between now and the target month; past months clamp to zero,
	// meaning "predict for now".
	now := h.now()
	monthsAhead := (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
	if monthsAhead < 0 {
		monthsAhead = 0
	}

	record, err := h.repo.FindRecent(c.Request.Context(), repository.PriceFilter{
		State:    req.State,
		District: req.District,
		Market:   req.Market,
		Crop:     req.Crop,
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to look up prices"})
		return
	}

	var currentPrice float64
	unit := "kg"
	method := models.MethodSynthetic
	if record != nil && record.Price > 0 {
		currentPrice = record.Price
		if record.Unit != "" {
			unit = record.Unit
		}
		method = models.MethodMockData
	} else {
		currentPrice = h.predictor.BasePrice(req.Crop)
	}

	predictedPrice := h.predictor.Predict(currentPrice, monthsAhead, req.Crop)

	c.JSON(http.StatusOK, models.PredictResponse{
		State:          req.State,
		District:       req.District,
		Market:         req.Market,
		Crop:           req.Crop,
		Month:          req.Month,
		Unit:           unit,
		CurrentPrice:   forecast.Round2(currentPrice),
		PredictedPrice: predictedPrice,
		Method:         method,
	})
}

// bindErrorMessage maps a month format violation to its descriptive message;
// every other binding failure gets the generic one.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			if ve.Field() == "Month" && ve.Tag() == "yearmonth" {
				return "month must be in YYYY-MM format"
			}
		}
	}
	return "Invalid request body"
}
