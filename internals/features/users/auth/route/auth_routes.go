package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sigi_backend/internals/features/users/auth/controller"
	"sigi_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth surface. Login and register carry their
// own stricter rate limiters.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/logout", ctrl.Logout)
}

// AuthUserRoutes mounts the authenticated account endpoints under /api/u.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	user.Get("/me", ctrl.Me)
	user.Post("/change-password", ctrl.ChangePassword)
}
