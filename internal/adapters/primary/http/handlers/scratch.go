package handlers

import (
	"net/http"

	"ml-classroom-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListScratchKeys(c *gin.Context) {
	projectID, err := parseProjectID(c.Param("projectid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	keys, err := h.scratchSvc.ListKeys(c.Request.Context(), getOwner(c), projectID)
	if err != nil {
		log.WithError(err).Error("list scratch keys failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScratchKeyResponses(keys))
}

func (h *Handler) ScratchExtension(c *gin.Context) {
	js, err := h.scratchSvc.Extension(c.Request.Context(), c.Param("scratchkey"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/javascript; charset=utf-8", js)
}

func (h *Handler) ScratchClassify(c *gin.Context) {
	results, err := h.scratchSvc.Classify(c.Request.Context(), c.Param("scratchkey"), c.Query("data"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
