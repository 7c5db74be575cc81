package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for all non-2xx responses.
// Details is only populated on validation failures.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Entity writes the bare entity JSON. Successful creates and lookups
// return the entity itself, without an envelope.
func Entity(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// Error writes {"error": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// ValidationFailed writes the 400 body with the aggregate detail string.
func ValidationFailed(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: "Validation failed", Details: details})
}
