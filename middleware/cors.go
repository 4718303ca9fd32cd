package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy. An empty allowOrigins opens the API
// up, which is what local development wants.
func CORS(allowOrigins string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if allowOrigins == "" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = strings.Split(allowOrigins, ",")
		config.AllowCredentials = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	return cors.New(config)
}
