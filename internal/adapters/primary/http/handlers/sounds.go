package handlers

import (
	"errors"
	"io"
	"net/http"

	"ml-classroom-service/internal/adapters/primary/http/dto"
	"ml-classroom-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// registerSoundRoutes composes the upload and download routers.
func (h *Handler) registerSoundRoutes(project *gin.RouterGroup) {
	sounds := project.Group("/sounds")
	h.registerSoundUploadRoutes(sounds)
	h.registerSoundDownloadRoutes(sounds)
}

func (h *Handler) registerSoundUploadRoutes(r *gin.RouterGroup) {
	r.POST("", h.UploadSound)
}

func (h *Handler) registerSoundDownloadRoutes(r *gin.RouterGroup) {
	r.GET("/:soundid", h.DownloadSound)
}

// UploadSound stores the raw request body as a sound. The label is passed as
// a query parameter.
func (h *Handler) UploadSound(c *gin.Context) {
	projectID, err := parseProjectID(c.Param("projectid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.soundSvc.MaxBytes())
	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			mapDomainError(c, domain.ErrPayloadTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	sound, err := h.soundSvc.Upload(c.Request.Context(), getOwner(c), projectID, c.Query("label"), c.ContentType(), data)
	if err != nil {
		log.WithError(err).Warn("upload sound failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSoundResponse(sound))
}

func (h *Handler) DownloadSound(c *gin.Context) {
	projectID, err := parseProjectID(c.Param("projectid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	soundID, err := uuid.Parse(c.Param("soundid"))
	if err != nil {
		mapDomainError(c, domain.ErrSoundNotFound)
		return
	}

	sound, data, err := h.soundSvc.Download(c.Request.Context(), getOwner(c), projectID, soundID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, sound.ContentType, data)
}
