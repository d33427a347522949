package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 JSON response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// CreatedText sends a 201 plain-text response.
func CreatedText(c *gin.Context, message string) {
	c.String(http.StatusCreated, message)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": 0, "code": http.StatusBadRequest, "message": message})
}

// BadRequestText sends a 400 plain-text error response.
func BadRequestText(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
	c.Abort()
}

// Unauthorized sends a 401 plain-text error response.
func Unauthorized(c *gin.Context, message string) {
	c.String(http.StatusUnauthorized, message)
	c.Abort()
}

// NotFoundMsg sends a 404 error with a custom message.
func NotFoundMsg(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"ok": 0, "code": http.StatusNotFound, "message": message})
}

// NotFoundText sends a 404 plain-text error response.
func NotFoundText(c *gin.Context, message string) {
	c.String(http.StatusNotFound, message)
	c.Abort()
}

// TooManyRequests sends a 429 plain-text error response.
func TooManyRequests(c *gin.Context, message string) {
	c.String(http.StatusTooManyRequests, message)
	c.Abort()
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": 0, "code": http.StatusInternalServerError, "message": err.Error()})
}

// InternalErrorMsg sends a 500 error with a fixed message, hiding the cause.
func InternalErrorMsg(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": 0, "code": http.StatusInternalServerError, "message": message})
}
