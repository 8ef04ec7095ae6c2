package models

import "gorm.io/gorm"

type MusicTrack struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}
