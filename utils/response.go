// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes a uniform error body.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
