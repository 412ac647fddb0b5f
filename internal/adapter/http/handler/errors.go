package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remla25-team8/model-service/internal/usecase"
)

// Client-facing error messages
const (
	MessageMissingReview    = "Missing 'review' field in request body"
	MessagePredictionFailed = "Prediction failed: service unavailable"
	MessageInternalError    = "internal server error"
)

// Error codes carried in ErrorBody
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// Unknown errors never leak their text to the caller.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrMissingReview):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    MessageMissingReview,
		}
	case errors.Is(err, usecase.ErrPredictionFailed):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternalError,
			Message:    MessagePredictionFailed,
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternalError,
			Message:    MessageInternalError,
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}
