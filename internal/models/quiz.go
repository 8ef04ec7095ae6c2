package models

import "gorm.io/gorm"

type QuizQuestion struct {
	gorm.Model
	Question   string `json:"question"`
	Options    []byte `json:"-"` // JSON-encoded []string
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}
