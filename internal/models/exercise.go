package models

import (
	"errors"

	"gorm.io/gorm"
)

// ExerciseType exercise category
type ExerciseType string

const (
	ExerciseTypeReading   ExerciseType = "reading"
	ExerciseTypeListening ExerciseType = "listening"
	ExerciseTypeDictation ExerciseType = "dictation"
)

// ErrExerciseNotFound is returned when an exercise id does not exist.
var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is an authored exercise. AudioData holds the synthesized speech
// for Content; VoiceID records which voice produced it. The pair is only
// ever replaced together.
type Exercise struct {
	BaseModel
	Title       string       `json:"title" gorm:"size:256;not null"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	Content     string       `json:"content" gorm:"type:text;not null"` // source text for synthesis
	Type        ExerciseType `json:"type" gorm:"size:20;default:'listening';index"`

	LanguageID uint     `json:"languageId" gorm:"index;not null"`
	Language   Language `json:"language,omitempty" gorm:"foreignKey:LanguageID"`

	AudioData []byte `json:"-" gorm:"type:blob"`                // synthesized audio, immutable between re-syntheses
	VoiceID   string `json:"voiceId,omitempty" gorm:"size:64"`  // voice that produced AudioData
	AudioSize int64  `json:"audioSize,omitempty" gorm:"default:0"`
}

// TableName specifies the table name
func (Exercise) TableName() string {
	return "exercises"
}

// HasAudio reports whether synthesized audio is stored for the exercise.
func (e *Exercise) HasAudio() bool {
	return len(e.AudioData) > 0
}

// CreateExercise creates an exercise record
func CreateExercise(db *gorm.DB, exercise *Exercise) error {
	return db.Create(exercise).Error
}

// GetExerciseByID loads an exercise with its language.
func GetExerciseByID(db *gorm.DB, id uint) (*Exercise, error) {
	var exercise Exercise
	err := db.Preload("Language").First(&exercise, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// UpdateExerciseAudio replaces the audio payload and voice id in a single
// UPDATE so a reader never sees one without the other.
func UpdateExerciseAudio(db *gorm.DB, id uint, audio []byte, voiceID string) error {
	result := db.Model(&Exercise{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"audio_data": audio,
			"voice_id":   voiceID,
			"audio_size": int64(len(audio)),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
