package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupExerciseTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	return db
}

func createTestLanguage(t *testing.T, db *gorm.DB, name, code string) *Language {
	language := &Language{Name: name, Code: code}
	require.NoError(t, db.Create(language).Error)
	return language
}

func TestExercise_CRUD(t *testing.T) {
	db := setupExerciseTestDB(t)
	language := createTestLanguage(t, db, "Portuguese", "pt")

	exercise := &Exercise{
		Title:      "Listening drill 1",
		Content:    "Olá. Este é um exercício.",
		Type:       ExerciseTypeListening,
		LanguageID: language.ID,
	}
	require.NoError(t, CreateExercise(db, exercise))
	assert.NotZero(t, exercise.ID)

	loaded, err := GetExerciseByID(db, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, "Listening drill 1", loaded.Title)
	assert.Equal(t, "pt", loaded.Language.Code)
	assert.False(t, loaded.HasAudio())
}

func TestGetExerciseByID_NotFound(t *testing.T) {
	db := setupExerciseTestDB(t)

	_, err := GetExerciseByID(db, 9999)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestUpdateExerciseAudio(t *testing.T) {
	db := setupExerciseTestDB(t)
	language := createTestLanguage(t, db, "English", "en")

	exercise := &Exercise{
		Title:      "With audio",
		Content:    "Hello.",
		LanguageID: language.ID,
	}
	require.NoError(t, CreateExercise(db, exercise))

	audio := []byte("fake-mp3-bytes")
	require.NoError(t, UpdateExerciseAudio(db, exercise.ID, audio, "en-US"))

	loaded, err := GetExerciseByID(db, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, audio, loaded.AudioData)
	assert.Equal(t, "en-US", loaded.VoiceID)
	assert.Equal(t, int64(len(audio)), loaded.AudioSize)
	assert.True(t, loaded.HasAudio())
}

func TestUpdateExerciseAudio_ReplacesBothFields(t *testing.T) {
	db := setupExerciseTestDB(t)
	language := createTestLanguage(t, db, "French", "fr")

	exercise := &Exercise{Title: "Re-synthesis", Content: "Bonjour.", LanguageID: language.ID}
	require.NoError(t, CreateExercise(db, exercise))

	require.NoError(t, UpdateExerciseAudio(db, exercise.ID, []byte("first"), "fr-FR"))
	require.NoError(t, UpdateExerciseAudio(db, exercise.ID, []byte("second"), "fr-CA"))

	loaded, err := GetExerciseByID(db, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), loaded.AudioData)
	assert.Equal(t, "fr-CA", loaded.VoiceID)
}

func TestUpdateExerciseAudio_MissingExercise(t *testing.T) {
	db := setupExerciseTestDB(t)

	err := UpdateExerciseAudio(db, 1234, []byte("x"), "en-US")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
