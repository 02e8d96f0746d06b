package services

import (
	"context"
	"testing"

	"trivia-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMap(t *testing.T) {
	svc := NewCategoryService(testutil.NewDB(t, false))

	first, err := svc.CategoryMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{
		1: "Science", 2: "Art", 3: "Geography", 4: "History", 5: "Entertainment", 6: "Sports",
	}, first)

	second, err := svc.CategoryMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetCategory(t *testing.T) {
	svc := NewCategoryService(testutil.NewDB(t, false))

	category, err := svc.GetCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Science", category.Type)

	_, err = svc.GetCategory(context.Background(), 1000)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
