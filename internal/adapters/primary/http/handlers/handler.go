package handlers

import (
	"ml-classroom-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	trainingSvc *services.TrainingService
	ngramSvc    *services.NgramService
	scratchSvc  *services.ScratchService
	soundSvc    *services.SoundService
	version     string
}

func New(
	trainingSvc *services.TrainingService,
	ngramSvc *services.NgramService,
	scratchSvc *services.ScratchService,
	soundSvc *services.SoundService,
	version string,
) *Handler {
	return &Handler{
		trainingSvc: trainingSvc,
		ngramSvc:    ngramSvc,
		scratchSvc:  scratchSvc,
		soundSvc:    soundSvc,
		version:     version,
	}
}

// RegisterRoutes mounts every API route on r, which is expected to be the
// /api group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.Root)
	r.GET("/debug/errors/:code", h.DebugError)

	// Student-scoped routes
	students := r.Group("/classes/:tenant/students/:userid")
	students.POST("/training/ngrams", h.GetNgrams)

	project := students.Group("/projects/:projectid")
	project.GET("/scratchkeys", h.ListScratchKeys)
	project.GET("/training", h.ListTrainingItems)
	project.POST("/training", h.AddTrainingItem)

	// Sounds
	h.registerSoundRoutes(project)

	// Scratch (authenticated by scratch key only)
	scratch := r.Group("/scratch/:scratchkey")
	scratch.GET("/extension.js", h.ScratchExtension)
	scratch.GET("/classify", h.ScratchClassify)
}
