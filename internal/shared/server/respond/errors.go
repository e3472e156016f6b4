package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/shared/telemetry"
)

// ErrorBody is the payload under the top-level "error" key.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error aborts the request with an error envelope. Client errors are logged
// at warn level, server errors at error level.
func Error(c *gin.Context, status int, code, message string, details any) {
	fields := errorFields(c, status, code, message)
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{Code: code, Message: message, Details: details},
	})
}

func errorFields(c *gin.Context, status int, code, message string) map[string]any {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if assetID := c.GetString("assetId"); assetID != "" {
		fields["asset_id"] = assetID
	}
	if op := c.GetString("operation"); op != "" {
		fields["operation"] = op
	}
	return fields
}
