package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the success shape every endpoint returns: the frontend
// always reads success/message/data and, for paginated listings, meta.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func List[T any](c *gin.Context, data []T, meta Meta) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: &meta})
}
