package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for status, message := range errorMessages {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		abortWithError(c, status, errors.New("cause"))

		assert.True(t, c.IsAborted())
		assert.Equal(t, status, w.Code)
		require.Len(t, c.Errors, 1)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, status, resp.Error)
		assert.Equal(t, message, resp.Message)
		assert.NotContains(t, w.Body.String(), "cause")
	}
}

func TestAbortWithError_UnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	abortWithError(c, http.StatusTeapot, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, c.Errors)
}

func TestRecovered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, Recovered))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error!", resp.Message)
}
