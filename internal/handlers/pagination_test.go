package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		page      int
		wantLen   int
		wantFirst int
	}{
		{page: 1, wantLen: 10, wantFirst: 1},
		{page: 2, wantLen: 10, wantFirst: 11},
		{page: 3, wantLen: 3, wantFirst: 21},
		{page: 4, wantLen: 0},
		{page: 0, wantLen: 0},
		{page: -1, wantLen: 0},
	}
	for _, tt := range tests {
		got := paginate(items, tt.page)
		assert.Len(t, got, tt.wantLen, "page %d", tt.page)
		if tt.wantLen > 0 {
			assert.Equal(t, tt.wantFirst, got[0], "page %d", tt.page)
		}
	}

	assert.Empty(t, paginate([]int(nil), 1))
}

func TestPageParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]int{
		"/questions":          1,
		"/questions?page=3":   3,
		"/questions?page=abc": 1,
		"/questions?page=-2":  -2,
	}
	for url, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", url, nil)
		assert.Equal(t, want, pageParam(c), url)
	}
}
