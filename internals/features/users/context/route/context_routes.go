package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contextController "sigi_backend/internals/features/users/context/controller"
)

// ContextRoutes mounts the managing-institution switch under /api/u. The
// write endpoints re-check the superuser capability themselves.
func ContextRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := contextController.NewContextController(db)

	ctx := user.Group("/context")
	ctx.Get("/", ctrl.GetContext)
	ctx.Post("/institutions/:id/enter", ctrl.EnterInstitution)
	ctx.Post("/exit", ctrl.ExitInstitution)
}
