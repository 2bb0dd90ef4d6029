package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	directoryController "sigi_backend/internals/features/directory/controller"
)

// DirectoryRoutes mounts the state/municipality lookups used by forms for
// dependent selects. Read-only, any authenticated user.
func DirectoryRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := directoryController.NewDirectoryController(db)

	user.Get("/states", ctrl.ListStates)
	user.Get("/municipalities", ctrl.MunicipalitiesByState)
}
