// utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithDomainError translates a service-layer error into an HTTP
// response. Unknown errors become a generic 500 so internals don't leak.
func RespondWithDomainError(c *gin.Context, err error) {
	code := StatusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}
	c.JSON(code, gin.H{"error": message})
}
