package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/code-100-precent/LingDrill/internal/models"
	"github.com/code-100-precent/LingDrill/pkg/audiostore"
	"github.com/code-100-precent/LingDrill/pkg/response"
	"github.com/code-100-precent/LingDrill/pkg/synthesizer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	audioContentType  = "audio/mpeg"
	audioCacheControl = "public, max-age=3600"

	// Upload size cap; exercise audio is short spoken text.
	maxUploadSize = 32 << 20
)

// UploadVoiceID marks audio that was uploaded by an author rather than
// synthesized by the provider.
const UploadVoiceID = "system"

// AudioHandler serves stored exercise audio with byte-range support and
// handles the authoring synthesis/upload actions.
type AudioHandler struct {
	db     *gorm.DB
	store  *audiostore.Store
	synth  *synthesizer.Orchestrator
	logger *zap.Logger
}

// NewAudioHandler creates the audio handler.
func NewAudioHandler(db *gorm.DB, store *audiostore.Store, synth *synthesizer.Orchestrator) *AudioHandler {
	return &AudioHandler{
		db:     db,
		store:  store,
		synth:  synth,
		logger: zap.L().Named("audio_handler"),
	}
}

// StreamAudio handles GET /exercises/:id/audio. When no audio is stored the
// exercise text is synthesized on demand and persisted before serving.
// Responses honor Range headers with 206/416 semantics so players can seek.
func (h *AudioHandler) StreamAudio(c *gin.Context) {
	exerciseID, err := parseExerciseID(c)
	if err != nil {
		response.AbortWithStatusJSON(c, http.StatusBadRequest, err)
		return
	}

	audio, err := h.store.Get(c.Request.Context(), exerciseID)
	switch {
	case err == nil:
		// stored audio, serve directly
	case errors.Is(err, models.ErrExerciseNotFound):
		response.AbortWithStatusJSON(c, http.StatusNotFound, models.ErrExerciseNotFound)
		return
	case errors.Is(err, audiostore.ErrNoAudio):
		audio, err = h.synthesizeOnDemand(c, exerciseID)
		if err != nil {
			return // response already written
		}
	default:
		h.logger.Error("failed to load exercise audio",
			zap.Uint("exerciseId", exerciseID), zap.Error(err))
		response.AbortWithStatusJSON(c, http.StatusInternalServerError, errors.New("failed to load audio"))
		return
	}

	h.serveBytes(c, audio.Data)
}

// synthesizeOnDemand covers deployments that never pre-generate audio: the
// first listener pays the synthesis cost, every later request hits storage.
func (h *AudioHandler) synthesizeOnDemand(c *gin.Context, exerciseID uint) (*audiostore.Audio, error) {
	exercise, err := models.GetExerciseByID(h.db, exerciseID)
	if err != nil {
		if errors.Is(err, models.ErrExerciseNotFound) {
			response.AbortWithStatusJSON(c, http.StatusNotFound, models.ErrExerciseNotFound)
		} else {
			h.logger.Error("failed to load exercise", zap.Uint("exerciseId", exerciseID), zap.Error(err))
			response.AbortWithStatusJSON(c, http.StatusInternalServerError, errors.New("failed to load exercise"))
		}
		return nil, err
	}

	locale := c.Query("lang")
	if locale == "" {
		locale = exercise.Language.Code
	}

	data, voiceID, err := h.synth.Synthesize(c.Request.Context(), exercise.Content, locale)
	if err != nil {
		h.logger.Error("on-demand synthesis failed",
			zap.Uint("exerciseId", exerciseID), zap.String("locale", locale), zap.Error(err))
		response.AbortWithStatusJSON(c, http.StatusBadGateway, errors.New("could not generate audio"))
		return nil, err
	}

	if err := h.store.Put(c.Request.Context(), exerciseID, data, voiceID); err != nil {
		h.logger.Error("failed to store synthesized audio",
			zap.Uint("exerciseId", exerciseID), zap.Error(err))
		response.AbortWithStatusJSON(c, http.StatusInternalServerError, errors.New("failed to store audio"))
		return nil, err
	}

	return &audiostore.Audio{Data: data, VoiceID: voiceID}, nil
}

// serveBytes writes audio with full or partial content depending on the
// Range header. Audio for a given exercise+voice is immutable until
// re-synthesis, so responses are publicly cacheable.
func (h *AudioHandler) serveBytes(c *gin.Context, data []byte) {
	total := int64(len(data))

	c.Header("Content-Type", audioContentType)
	c.Header("Accept-Ranges", "bytes")
	c.Header("Cache-Control", audioCacheControl)

	rangeHeader := c.GetHeader("Range")
	if rangeHeader == "" {
		c.Header("Content-Length", strconv.FormatInt(total, 10))
		c.Status(http.StatusOK)
		_, _ = c.Writer.Write(data)
		return
	}

	r, ok := parseRange(rangeHeader, total)
	if !ok {
		// Unsatisfiable ranges must not fall back to full content,
		// seekable players rely on the 416.
		c.Header("Content-Range", fmt.Sprintf("bytes */%d", total))
		c.Status(http.StatusRequestedRangeNotSatisfiable)
		return
	}

	c.Header("Content-Range", fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, total))
	c.Header("Content-Length", strconv.FormatInt(r.Size(), 10))
	c.Status(http.StatusPartialContent)
	_, _ = c.Writer.Write(data[r.Start : r.End+1])
}

// GenerateAudio handles POST /admin/exercises/:id/audio, the authoring
// "generate audio" action: synthesize the exercise text, then persist.
func (h *AudioHandler) GenerateAudio(c *gin.Context) {
	exerciseID, err := parseExerciseID(c)
	if err != nil {
		response.Fail(c, "invalid exercise id", nil)
		return
	}

	exercise, err := models.GetExerciseByID(h.db, exerciseID)
	if err != nil {
		if errors.Is(err, models.ErrExerciseNotFound) {
			response.Fail(c, "exercise not found", nil)
			return
		}
		h.logger.Error("failed to load exercise", zap.Uint("exerciseId", exerciseID), zap.Error(err))
		response.Fail(c, "failed to load exercise", nil)
		return
	}

	locale := c.Query("lang")
	if locale == "" {
		locale = exercise.Language.Code
	}

	data, voiceID, err := h.synth.Synthesize(c.Request.Context(), exercise.Content, locale)
	if err != nil {
		h.logger.Error("synthesis failed",
			zap.Uint("exerciseId", exerciseID), zap.String("locale", locale), zap.Error(err))
		response.Fail(c, "could not generate audio", nil)
		return
	}

	if err := h.store.Put(c.Request.Context(), exerciseID, data, voiceID); err != nil {
		h.logger.Error("failed to store audio", zap.Uint("exerciseId", exerciseID), zap.Error(err))
		response.Fail(c, "failed to store audio", nil)
		return
	}

	response.Success(c, "audio generated", gin.H{
		"audioUrl": fmt.Sprintf("/api/exercises/%d/audio", exerciseID),
		"voiceId":  voiceID,
		"size":     len(data),
	})
}

// UploadAudio handles PUT /admin/exercises/:id/audio, storing audio an
// author recorded or produced elsewhere.
func (h *AudioHandler) UploadAudio(c *gin.Context) {
	exerciseID, err := parseExerciseID(c)
	if err != nil {
		response.Fail(c, "invalid exercise id", nil)
		return
	}

	data, err := readUploadedAudio(c)
	if err != nil {
		response.Fail(c, "invalid audio payload", nil)
		return
	}

	if err := h.store.Put(c.Request.Context(), exerciseID, data, UploadVoiceID); err != nil {
		if errors.Is(err, models.ErrExerciseNotFound) {
			response.Fail(c, "exercise not found", nil)
			return
		}
		h.logger.Error("failed to store uploaded audio", zap.Uint("exerciseId", exerciseID), zap.Error(err))
		response.Fail(c, "failed to store audio", nil)
		return
	}

	response.Success(c, "audio saved", gin.H{
		"audioUrl": fmt.Sprintf("/api/exercises/%d/audio", exerciseID),
	})
}

func parseExerciseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid exercise id")
	}
	return uint(id), nil
}

// readUploadedAudio accepts either a multipart form field named "audio" or
// a raw request body.
func readUploadedAudio(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("audio"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxUploadSize))
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadSize))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty audio payload")
	}
	return data, nil
}
