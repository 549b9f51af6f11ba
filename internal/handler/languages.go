package handlers

import (
	"net/http"

	"github.com/code-100-precent/LingDrill/internal/models"
	"github.com/code-100-precent/LingDrill/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LanguageHandler lists the languages exercises can be authored in.
type LanguageHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewLanguageHandler(db *gorm.DB) *LanguageHandler {
	return &LanguageHandler{
		db:     db,
		logger: zap.L().Named("language_handler"),
	}
}

// ListLanguages handles GET /languages.
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	languages, err := models.GetLanguages(h.db)
	if err != nil {
		h.logger.Error("failed to list languages", zap.Error(err))
		response.AbortWithStatusJSON(c, http.StatusInternalServerError, err)
		return
	}
	response.Success(c, "ok", languages)
}
