package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondWithStatus é usado quando uma resposta de erro também leva dados (ex.: resultado do import).
func RespondWithStatus(c *gin.Context, code int, msg string, payload gin.H) {
	if code >= http.StatusBadRequest {
		payload["error"] = msg
	} else {
		payload["message"] = msg
	}
	c.JSON(code, payload)
}
