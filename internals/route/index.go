// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizRoute "bytequiz_backend/internals/features/quiz/route"
	authRoute "bytequiz_backend/internals/features/users/auth/route"
	middlewares "bytequiz_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// rate limiter global
	app.Use(middlewares.GlobalRateLimiter())

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up QuizRoutes...")
	quizRoute.QuizRoutes(app, db)
}
