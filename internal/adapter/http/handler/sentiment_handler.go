package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/remla25-team8/model-service/internal/usecase"
)

// SentimentHandler handles prediction requests
type SentimentHandler struct {
	sentimentUC usecase.SentimentUsecase
	log         *zap.Logger
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(sentimentUC usecase.SentimentUsecase, log *zap.Logger) *SentimentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SentimentHandler{sentimentUC: sentimentUC, log: log}
}

// Predict godoc
// @Summary Predict restaurant review sentiment
// @Description Classifies the review as positive or negative and echoes the processed text.
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param input_data body usecase.PredictInput true "Review to be classified"
// @Success 200 {object} usecase.PredictOutput
// @Failure 400 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Router /predict [post]
func (h *SentimentHandler) Predict(c *gin.Context) {
	var input usecase.PredictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Debug("Rejected prediction request",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		HandleUsecaseError(c, usecase.ErrMissingReview)
		return
	}

	output, err := h.sentimentUC.Predict(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// DumbPredict godoc
// @Summary Fixed positive verdict
// @Description Returns a constant positive verdict without consulting the model. The review is echoed, truncated to 500 characters.
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param input_data body usecase.DumbPredictInput false "Review to echo"
// @Success 200 {object} usecase.DumbPredictOutput
// @Router /dumbpredict [post]
func (h *SentimentHandler) DumbPredict(c *gin.Context) {
	var input usecase.DumbPredictInput
	// the body is optional; anything unparseable echoes an empty review
	if err := c.ShouldBindJSON(&input); err != nil {
		input = usecase.DumbPredictInput{}
	}

	respondSuccess(c, http.StatusOK, h.sentimentUC.DumbPredict(&input))
}
