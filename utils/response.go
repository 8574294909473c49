// File: /utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every car API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorBody is written by the terminal error handler, outside the car routes.
type ErrorBody struct {
	Message string `json:"message"`
}

func SendData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}
