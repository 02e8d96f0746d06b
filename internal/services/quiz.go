package services

import (
	"context"
	"fmt"
	"math/rand"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

// AllCategories selects questions from every category.
const AllCategories uint = 0

type QuizService struct {
	db   *gorm.DB
	pick func(n int) int
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db, pick: rand.Intn}
}

// EligibleQuestions returns the questions in categoryID (or every category
// for AllCategories) whose ids are not in previous.
func (s *QuizService) EligibleQuestions(ctx context.Context, categoryID uint, previous []uint) ([]models.Question, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	if categoryID != AllCategories {
		query = query.Where("category = ?", categoryID)
	}
	// NOT IN with an empty list renders as NOT IN (NULL), which matches nothing.
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var questions []models.Question
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("load eligible questions: %w", err)
	}
	return questions, nil
}

// NextQuestion picks one eligible question uniformly at random. It returns
// nil without error once every eligible question has been seen.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error) {
	questions, err := s.EligibleQuestions(ctx, categoryID, previous)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[s.pick(len(questions))], nil
}
