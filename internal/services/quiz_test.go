package services

import (
	"context"
	"testing"

	"trivia-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibleQuestions(t *testing.T) {
	svc := NewQuizService(testutil.NewDB(t, true))
	ctx := context.Background()

	tests := []struct {
		name     string
		category uint
		previous []uint
		wantIDs  []uint
	}{
		{"category with nothing seen", 1, nil, []uint{15, 16, 17, 19}},
		{"category with empty previous list", 1, []uint{}, []uint{15, 16, 17, 19}},
		{"category excludes previous", 1, []uint{5, 9, 13, 15, 17}, []uint{16, 19}},
		{"all categories excludes previous", AllCategories, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}, []uint{18, 19}},
		{"unknown category", 99, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := svc.EligibleQuestions(ctx, tt.category, tt.previous)
			require.NoError(t, err)

			var ids []uint
			for _, q := range questions {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestNextQuestion(t *testing.T) {
	svc := NewQuizService(testutil.NewDB(t, true))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		q, err := svc.NextQuestion(ctx, 1, []uint{5, 9, 13})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.EqualValues(t, 1, q.Category)
		assert.NotContains(t, []uint{5, 9, 13}, q.ID)
	}
}

func TestNextQuestion_UsesPicker(t *testing.T) {
	svc := NewQuizService(testutil.NewDB(t, true))
	svc.pick = func(n int) int { return n - 1 }

	q, err := svc.NextQuestion(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.EqualValues(t, 19, q.ID)
}

func TestNextQuestion_Exhausted(t *testing.T) {
	svc := NewQuizService(testutil.NewDB(t, true))

	q, err := svc.NextQuestion(context.Background(), 1, []uint{15, 16, 17, 19})
	require.NoError(t, err)
	assert.Nil(t, q)
}
