package handlers

import (
	"net/http"
	"strconv"

	"ml-classroom-service/internal/adapters/primary/http/dto"
	"ml-classroom-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListTrainingItems(c *gin.Context) {
	projectID, err := parseProjectID(c.Param("projectid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		mapDomainError(c, domain.ErrInvalidPagination)
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		mapDomainError(c, domain.ErrInvalidPagination)
		return
	}

	filter := domain.TrainingListFilter{
		ProjectID: projectID,
		Label:     c.Query("label"),
		Limit:     limit,
		Offset:    offset,
	}

	page, err := h.trainingSvc.List(c.Request.Context(), getOwner(c), filter)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	resp := make([]dto.TrainingItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		resp = append(resp, dto.ToTrainingItemResponse(item))
	}

	c.JSON(http.StatusOK, dto.ListTrainingItemsResponse{
		Items:      resp,
		Total:      page.Total,
		PageSize:   page.Limit,
		NextOffset: page.Offset + len(resp),
	})
}

func (h *Handler) AddTrainingItem(c *gin.Context) {
	projectID, err := parseProjectID(c.Param("projectid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.AddTrainingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.trainingSvc.AddItem(c.Request.Context(), getOwner(c), projectID, req.Label, req.Data, req.Numbers)
	if err != nil {
		log.WithError(err).Warn("add training item failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainingItemResponse(item))
}

func (h *Handler) GetNgrams(c *gin.Context) {
	var req dto.NgramsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projectID, err := parseProjectID(req.ProjectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	analysis, err := h.ngramSvc.Analyse(c.Request.Context(), getOwner(c), projectID)
	if err != nil {
		log.WithError(err).Error("ngram analysis failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
