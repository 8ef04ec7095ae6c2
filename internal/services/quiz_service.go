package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/Sridevi2108/Auracare/internal/models"
)

var ErrQuizNotFound = errors.New("quiz question not found")

// QuizView is the API shape of a quiz question, with options decoded.
type QuizView struct {
	ID         uint     `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
}

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

func (s *QuizService) List() ([]QuizView, error) {
	var questions []models.QuizQuestion
	if err := s.db.Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	views := make([]QuizView, 0, len(questions))
	for _, q := range questions {
		views = append(views, toQuizView(q))
	}
	return views, nil
}

func (s *QuizService) Create(question string, options []string, answer, category, difficulty string) (*QuizView, error) {
	encoded, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}

	q := models.QuizQuestion{
		Question:   question,
		Options:    encoded,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
	if err := s.db.Create(&q).Error; err != nil {
		return nil, err
	}
	view := toQuizView(q)
	return &view, nil
}

func (s *QuizService) Update(id uint, question string, options []string, answer, category, difficulty string) error {
	var q models.QuizQuestion
	if err := s.db.First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return err
	}

	encoded, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return s.db.Model(&q).Updates(map[string]interface{}{
		"question":   question,
		"options":    encoded,
		"answer":     answer,
		"category":   category,
		"difficulty": difficulty,
	}).Error
}

func (s *QuizService) Delete(id uint) error {
	result := s.db.Delete(&models.QuizQuestion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func toQuizView(q models.QuizQuestion) QuizView {
	var options []string
	if len(q.Options) > 0 {
		// Options were marshalled by us; a decode failure means a hand-edited
		// row, rendered as empty rather than failing the listing.
		_ = json.Unmarshal(q.Options, &options)
	}
	return QuizView{
		ID:         q.ID,
		Question:   q.Question,
		Options:    options,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}
