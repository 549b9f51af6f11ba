package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Language is a language offering of the platform. Code is the locale code
// used to select a synthesis voice.
type Language struct {
	BaseModel
	Name string `json:"name" gorm:"size:64;not null"`
	Code string `json:"code" gorm:"size:16;uniqueIndex;not null"` // e.g. en, pt-BR
}

// TableName specifies the table name
func (Language) TableName() string {
	return "languages"
}

// GetLanguages returns all languages ordered by name.
func GetLanguages(db *gorm.DB) ([]Language, error) {
	var languages []Language
	err := db.Order("name ASC").Find(&languages).Error
	if err != nil {
		return nil, err
	}
	return languages, nil
}

// GetLanguageByCode looks a language up by its locale code.
func GetLanguageByCode(db *gorm.DB, code string) (*Language, error) {
	var language Language
	err := db.Where("code = ?", code).First(&language).Error
	if err != nil {
		return nil, err
	}
	return &language, nil
}

// SeedLanguages inserts the default language set, skipping existing codes.
func SeedLanguages(db *gorm.DB) error {
	defaults := []Language{
		{Name: "English", Code: "en"},
		{Name: "Spanish", Code: "es"},
		{Name: "French", Code: "fr"},
		{Name: "German", Code: "de"},
		{Name: "Italian", Code: "it"},
		{Name: "Portuguese", Code: "pt"},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&defaults).Error
}
