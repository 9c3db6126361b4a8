package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes {"success": true, "message": ...}.
func JSONSuccess(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": true, "message": message})
}

// JSONCreated is JSONSuccess plus the id of the new row.
func JSONCreated(c *gin.Context, code int, message string, id uint) {
	c.JSON(code, gin.H{"success": true, "message": message, "id": id})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONErrorDetail adds a human readable detail next to the error.
func JSONErrorDetail(c *gin.Context, code int, message, detail string) {
	if detail == "" {
		JSONError(c, code, message)
		return
	}
	c.JSON(code, gin.H{"error": message, "message": detail})
}
