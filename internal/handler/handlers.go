package handlers

import (
	"github.com/code-100-precent/LingDrill/pkg/audiostore"
	"github.com/code-100-precent/LingDrill/pkg/config"
	"github.com/code-100-precent/LingDrill/pkg/synthesizer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers bundles the HTTP handlers and their shared dependencies.
type Handlers struct {
	Audio    *AudioHandler
	Language *LanguageHandler
}

func NewHandlers(db *gorm.DB, store *audiostore.Store, synth *synthesizer.Orchestrator) *Handlers {
	return &Handlers{
		Audio:    NewAudioHandler(db, store, synth),
		Language: NewLanguageHandler(db),
	}
}

// Register mounts all routes on the engine under the configured prefixes.
func (h *Handlers) Register(engine *gin.Engine) {
	api := engine.Group(config.GlobalConfig.Server.APIPrefix)
	{
		api.GET("/exercises/:id/audio", h.Audio.StreamAudio)
		api.GET("/languages", h.Language.ListLanguages)
		api.GET("/system/health", Health)
	}

	admin := api.Group(config.GlobalConfig.Server.AdminPrefix)
	{
		admin.POST("/exercises/:id/audio", h.Audio.GenerateAudio)
		admin.PUT("/exercises/:id/audio", h.Audio.UploadAudio)
	}
}
