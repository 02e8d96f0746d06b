package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(CORSHeaders())
	r.GET("/categories", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/categories", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/categories", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, tt.code, w.Code, tt.path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), tt.path)
		assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"), tt.path)
		assert.Equal(t, "GET, POST, PATCH, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"), tt.path)
	}
}
