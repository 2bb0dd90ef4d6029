package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "sigi_backend/internals/features/users/auth/route"
	contextRoute "sigi_backend/internals/features/users/context/route"
	userRoute "sigi_backend/internals/features/users/user/route"
)

// UserSelfRoutes covers the authenticated user's own account and session
// context.
func UserSelfRoutes(user fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(user, db)
	contextRoute.ContextRoutes(user, db)
}

// UserAdminRoutes covers account management by superusers.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
