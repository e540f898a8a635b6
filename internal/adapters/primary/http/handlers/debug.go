package handlers

import (
	"net/http"
	"strconv"

	"ml-classroom-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

// debugStatusCodes are the statuses the front end needs to exercise its
// error handling.
var debugStatusCodes = map[int]bool{
	http.StatusOK:                    true,
	http.StatusBadRequest:            true,
	http.StatusUnauthorized:          true,
	http.StatusForbidden:             true,
	http.StatusNotFound:              true,
	http.StatusRequestEntityTooLarge: true,
	http.StatusInternalServerError:   true,
	http.StatusNotImplemented:        true,
	http.StatusServiceUnavailable:    true,
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": "ml-classroom-service", "version": h.version})
}

// DebugError responds with the requested status code and a JSON body.
func (h *Handler) DebugError(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil || !debugStatusCodes[code] {
		mapDomainError(c, domain.ErrUnsupportedStatusCode)
		return
	}

	if code == http.StatusOK {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.JSON(code, gin.H{"error": http.StatusText(code)})
}
