package bootstrap

import (
	"regexp"
	"time"

	"github.com/gin-contrib/cors"

	"github.com/linguahub/admin-console-backend/config"
)

var localhostOrigin = regexp.MustCompile(`^https?://localhost(:\d+)?$`)

// BuildCORS produces the single CORS policy for the whole API: the origins
// enumerated in config plus any localhost port for development. Handlers
// never set CORS headers themselves.
func BuildCORS(cfg *config.CORSConfig) cors.Config {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}

	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin] || localhostOrigin.MatchString(origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
