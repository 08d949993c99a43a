package handlers

import (
	"net/http"

	request "meditrack/internal/adapter/http/dto/request"
	response "meditrack/internal/adapter/http/dto/response"
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// Recommend godoc
// @Summary Recommend a specialization and doctor for a set of symptoms
// @Tags recommendations
// @Accept json
// @Produce json
// @Param symptoms body request.RecommendationRequest true "Symptoms"
// @Success 200 {object} response.RecommendationResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var payload request.RecommendationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c)
		return
	}

	rec, err := h.usecase.Recommend(c.Request.Context(), payload.ResolveSymptoms(), payload.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecommendation(rec))
}

// Slots godoc
// @Summary Candidate appointment slots for a day
// @Tags recommendations
// @Produce json
// @Param date query string true "yyyy-MM-dd"
// @Success 200 {object} response.SlotsResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /recommendations/slots [get]
func (h *RecommendationHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	slots, err := h.usecase.Slots(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SlotsResponse{Date: date, Slots: slots})
}
