package resp

import (
	"errors"
	"net/http"

	"tableside/services"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a service error onto the matching HTTP status:
// validation → 400, forbidden → 403, not found → 404, anything else → 500.
func Error(c *gin.Context, err error) {
	var ve services.ValidationError
	var fe services.ForbiddenError
	var nf services.NotFoundError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Message)
	case errors.As(err, &fe):
		Forbidden(c, fe.Error())
	case errors.As(err, &nf):
		NotFound(c, nf.Error())
	default:
		ServerError(c, err)
	}
}
