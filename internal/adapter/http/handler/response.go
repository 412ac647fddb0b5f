package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorBody is the JSON body of every error response
type ErrorBody struct {
	Error     string `json:"error" example:"Missing 'review' field in request body"`
	Code      string `json:"code" example:"INVALID_REQUEST"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return uuid.New().String()
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Error:     message,
		Code:      code,
		RequestID: requestID(c),
	})
}
