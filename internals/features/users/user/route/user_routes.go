package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sigi_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts account management under the superuser group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.Detail)
	users.Post("/", ctrl.Create)
	users.Put("/:id", ctrl.Update)
	users.Delete("/:id", ctrl.Delete)
}
