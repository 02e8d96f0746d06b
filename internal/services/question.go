package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) GetQuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions in category %d: %w", categoryID, err)
	}
	return questions, nil
}

// SearchQuestions matches term as a literal, case-insensitive substring of
// the question text.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	pattern := "%" + escapeLike(term) + "%"

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&question).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var question models.Question
		err := tx.First(&question, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		if err != nil {
			return fmt.Errorf("get question %d: %w", id, err)
		}

		if err := tx.Delete(&question).Error; err != nil {
			return fmt.Errorf("delete question %d: %w", id, err)
		}
		return nil
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
