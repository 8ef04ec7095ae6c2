package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/Sridevi2108/Auracare/internal/models"
)

// ActivitySummary is one aggregated row: total time per activity, in
// minutes rounded to one decimal.
type ActivitySummary struct {
	Name    string  `json:"name"`
	Minutes float64 `json:"minutes"`
}

// DefaultActivityStore implements ActivityStoreDB on Postgres.
type DefaultActivityStore struct {
	db *gorm.DB
}

func NewActivityStoreDB(db *gorm.DB) ActivityStoreDB {
	return &DefaultActivityStore{db: db}
}

func (s *DefaultActivityStore) SaveActivityToDB(entry models.ActivityLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return s.db.Create(&entry).Error
}

func (s *DefaultActivityStore) GetActivitySummaryFromDB(email string) ([]ActivitySummary, error) {
	var rows []struct {
		Activity     string
		TotalSeconds int
	}
	result := s.db.Model(&models.ActivityLog{}).
		Select("activity, SUM(duration) as total_seconds").
		Where("email = ?", email).
		Group("activity").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	summary := make([]ActivitySummary, 0, len(rows))
	for _, r := range rows {
		summary = append(summary, ActivitySummary{
			Name:    r.Activity,
			Minutes: RoundToMinutes(r.TotalSeconds),
		})
	}
	return summary, nil
}

// RoundToMinutes converts seconds to minutes with one decimal place.
func RoundToMinutes(seconds int) float64 {
	return math.Round(float64(seconds)/60*10) / 10
}
