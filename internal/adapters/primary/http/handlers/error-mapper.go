package handlers

import (
	"errors"
	"net/http"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/pkg/random"
	"ml-classroom-service/internal/pkg/urlchecker"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrSoundNotFound),
		errors.Is(err, domain.ErrScratchKeyNotFound),
		errors.Is(err, domain.ErrCredentialsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrTrainingItemConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Too large
	case errors.Is(err, domain.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingTenant),
		errors.Is(err, domain.ErrMissingStudent),
		errors.Is(err, domain.ErrInvalidProjectID),
		errors.Is(err, domain.ErrInvalidLabel),
		errors.Is(err, domain.ErrInvalidTrainingData),
		errors.Is(err, domain.ErrTextTooLong),
		errors.Is(err, domain.ErrProjectTypeNotSupported),
		errors.Is(err, domain.ErrEmptyPayload),
		errors.Is(err, domain.ErrInvalidPagination),
		errors.Is(err, domain.ErrMissingClassifyData),
		errors.Is(err, domain.ErrNoLabels),
		errors.Is(err, domain.ErrUnsupportedStatusCode),
		errors.Is(err, urlchecker.ErrMalformedURL),
		errors.Is(err, urlchecker.ErrUnsupportedScheme),
		errors.Is(err, random.ErrInvalidCount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrClassifierUnavailable),
		errors.Is(err, domain.ErrServiceUnreachable),
		errors.Is(err, domain.ErrCredentialsRejected):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
