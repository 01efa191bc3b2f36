package utils

import "github.com/gin-gonic/gin"

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// RespondError writes a uniform error body. Success responses are written by
// the controllers directly because each resource has its own wire shape.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{
		Status:  false,
		Message: err.Error(),
	})
}
