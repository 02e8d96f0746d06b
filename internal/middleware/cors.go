package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	CORSAllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	CORSAllowHeaders = []string{"Content-Type", "Authorization"}
)

// CORSHeaders stamps the allow headers on every response, including requests
// without an Origin header and the 404/405 fallbacks. Preflight is left to cors.New.
func CORSHeaders() gin.HandlerFunc {
	methods := strings.Join(CORSAllowMethods, ", ")
	headers := strings.Join(CORSAllowHeaders, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Next()
	}
}
