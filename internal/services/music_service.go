package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sridevi2108/Auracare/internal/models"
)

var ErrTrackNotFound = errors.New("music track not found")

type MusicService struct {
	db *gorm.DB
}

func NewMusicService(db *gorm.DB) *MusicService {
	return &MusicService{db: db}
}

func (s *MusicService) List() ([]models.MusicTrack, error) {
	var tracks []models.MusicTrack
	if err := s.db.Order("id asc").Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

func (s *MusicService) Create(track models.MusicTrack) (*models.MusicTrack, error) {
	if err := s.db.Create(&track).Error; err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *MusicService) Update(id uint, track models.MusicTrack) error {
	var existing models.MusicTrack
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrackNotFound
		}
		return err
	}
	return s.db.Model(&existing).Updates(map[string]interface{}{
		"title":       track.Title,
		"description": track.Description,
		"duration":    track.Duration,
		"url":         track.URL,
		"category":    track.Category,
	}).Error
}

func (s *MusicService) Delete(id uint) error {
	result := s.db.Delete(&models.MusicTrack{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrackNotFound
	}
	return nil
}
