// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bytequiz_backend/internals/features/users/auth/controller"
	rateLimiter "bytequiz_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/forgot-password", rateLimiter.ForgotPasswordRateLimiter(), authController.ForgotPassword)
	baseAuth.Post("/reset-password", authController.ResetPassword)

	baseAuth.Post("/logout", authController.Logout)
}
