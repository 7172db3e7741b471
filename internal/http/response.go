// Package httpapi holds the HTTP surface: handlers, middleware, router and
// the response envelope.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with. Count is present
// only for list-shaped payloads and equals the number of top-level items
// returned. Error carries failure detail outside production only.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// base carries the pieces every handler needs: the logger and the redaction
// switch for 500-class responses.
type base struct {
	logger     *zap.Logger
	production bool
}

// internalError logs the failure and answers with the generic 500 envelope.
// The underlying error text is only exposed outside production.
func (b *base) internalError(c *gin.Context, logMsg string, err error) {
	b.logger.Error(logMsg, zap.Error(err), zap.String("path", c.FullPath()))
	resp := Response{Success: false, Message: "Internal server error"}
	if !b.production && err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// externalFailure writes a translated upstream failure; detail is redacted
// in production like any other error text.
func (b *base) externalFailure(c *gin.Context, status int, message, detail string) {
	resp := Response{Success: false, Message: message}
	if !b.production && detail != "" {
		resp.Error = detail
	}
	c.JSON(status, resp)
}
