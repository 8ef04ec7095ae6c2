package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/models"
)

// DBStateStore implements chatstate.StateStore on Postgres, one snapshot row
// per user.
type DBStateStore struct {
	db *gorm.DB
}

func NewDBStateStore(db *gorm.DB) *DBStateStore {
	return &DBStateStore{db: db}
}

func (s *DBStateStore) Load(email string) (chatstate.State, bool, error) {
	var snapshot models.ChatStateSnapshot
	if err := s.db.Where("email = ?", email).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chatstate.State{}, false, nil
		}
		return chatstate.State{}, false, err
	}

	st := chatstate.State{
		SessionID: snapshot.SessionID,
		CreatedAt: snapshot.StartedAt,
	}
	if len(snapshot.Transcript) > 0 {
		if err := json.Unmarshal(snapshot.Transcript, &st.Transcript); err != nil {
			return chatstate.State{}, false, err
		}
	}
	return st, true, nil
}

func (s *DBStateStore) Save(email string, st chatstate.State) error {
	transcript, err := json.Marshal(st.Transcript)
	if err != nil {
		return err
	}

	snapshot := models.ChatStateSnapshot{
		Email:      email,
		SessionID:  st.SessionID,
		StartedAt:  st.CreatedAt,
		Transcript: transcript,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_id", "started_at", "transcript"}),
	}).Create(&snapshot).Error
}
