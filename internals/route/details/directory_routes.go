package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	directoryRoute "sigi_backend/internals/features/directory/route"
)

func DirectoryRoutes(user fiber.Router, db *gorm.DB) {
	directoryRoute.DirectoryRoutes(user, db)
}
