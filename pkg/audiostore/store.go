// Package audiostore persists synthesized exercise audio with cache-first reads.
package audiostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/code-100-precent/LingDrill/internal/models"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoAudio is returned when the exercise exists but has no stored audio.
var ErrNoAudio = errors.New("no audio stored for exercise")

// Audio is a stored payload together with the voice that produced it.
// The pair is written atomically and read as a unit.
type Audio struct {
	Data    []byte
	VoiceID string
}

// Store reads and writes exercise audio. Reads are cache-first; audio is
// immutable between re-syntheses so a long TTL is safe.
type Store struct {
	db     *gorm.DB
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewStore creates a store whose cache entries live for ttl.
func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		db:     db,
		cache:  gocache.New(ttl, 2*ttl),
		logger: zap.L().Named("audiostore"),
	}
}

// Get returns the stored audio for an exercise. models.ErrExerciseNotFound
// is returned for unknown ids, ErrNoAudio when nothing was synthesized yet.
func (s *Store) Get(ctx context.Context, exerciseID uint) (*Audio, error) {
	key := cacheKey(exerciseID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*Audio), nil
	}

	exercise, err := models.GetExerciseByID(s.db.WithContext(ctx), exerciseID)
	if err != nil {
		return nil, err
	}
	if !exercise.HasAudio() {
		return nil, ErrNoAudio
	}

	audio := &Audio{Data: exercise.AudioData, VoiceID: exercise.VoiceID}
	s.cache.SetDefault(key, audio)
	return audio, nil
}

// Put stores a new audio payload and voice id for an exercise. Empty audio
// is rejected so a failed synthesis can never wipe an existing payload.
func (s *Store) Put(ctx context.Context, exerciseID uint, data []byte, voiceID string) error {
	if len(data) == 0 {
		return errors.New("refusing to store empty audio")
	}
	if voiceID == "" {
		return errors.New("voice id is required")
	}

	err := models.UpdateExerciseAudio(s.db.WithContext(ctx), exerciseID, data, voiceID)
	if err != nil {
		return err
	}

	s.cache.SetDefault(cacheKey(exerciseID), &Audio{Data: data, VoiceID: voiceID})
	s.logger.Info("stored exercise audio",
		zap.Uint("exerciseId", exerciseID),
		zap.String("voiceId", voiceID),
		zap.Int("size", len(data)))
	return nil
}

// Forget drops the cached entry for an exercise, e.g. after deletion.
func (s *Store) Forget(exerciseID uint) {
	s.cache.Delete(cacheKey(exerciseID))
}

func cacheKey(exerciseID uint) string {
	return fmt.Sprintf("exercise.audio.%d", exerciseID)
}
