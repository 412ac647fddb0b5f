package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/remla25-team8/model-service/internal/domain/repository"
	"github.com/remla25-team8/model-service/internal/usecase"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	sentimentUC usecase.SentimentUsecase
	cache       repository.PredictionCache
	model       string
}

// NewHealthHandler creates a new health handler. cache may be nil.
func NewHealthHandler(sentimentUC usecase.SentimentUsecase, cache repository.PredictionCache, model string) *HealthHandler {
	return &HealthHandler{
		sentimentUC: sentimentUC,
		cache:       cache,
		model:       model,
	}
}

// ReadyStatus represents the readiness check response
type ReadyStatus struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Reason string `json:"reason,omitempty"`
}

// Health godoc
// @Summary Service health
// @Description Liveness probe reporting static service metadata.
// @Tags Health
// @Produce json
// @Success 200 {object} usecase.HealthOutput
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.sentimentUC.Health())
}

// Ready godoc
// @Summary Service readiness
// @Description Reports the loaded model and, when configured, whether the prediction cache is reachable.
// @Tags Health
// @Produce json
// @Success 200 {object} ReadyStatus
// @Failure 503 {object} ReadyStatus
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.cache.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, ReadyStatus{
				Status: "not ready",
				Model:  h.model,
				Reason: "cache unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, ReadyStatus{Status: "ready", Model: h.model})
}
