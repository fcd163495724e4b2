package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"bytequiz_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS; origins diambil dari env
// CORS_ORIGINS (comma separated), fallback ke origin dev frontend.
func CorsMiddleware() fiber.Handler {
	origins := configs.CORSOrigins
	if strings.TrimSpace(origins) == "" {
		origins = strings.Join([]string{
			"http://localhost:5173",
			"https://bytequiz-byteslasher.vercel.app",
		}, ", ")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
