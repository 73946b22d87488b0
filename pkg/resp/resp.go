package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/services"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

// StatusOf maps service errors onto status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrEmptyBill):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidLogin):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func Error(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("http: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}

// Screen answers with a screen view plus the alerts raised while handling
// the request. A non-nil err turns the envelope into an error one.
func Screen(c *gin.Context, status int, view any, alerts []string, err error) {
	if alerts == nil {
		alerts = []string{}
	}
	body := gin.H{"ok": err == nil, "data": view, "alerts": alerts}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
