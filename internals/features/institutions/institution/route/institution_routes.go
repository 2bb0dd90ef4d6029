package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	institutionController "sigi_backend/internals/features/institutions/institution/controller"
)

// InstitutionAdminRoutes mounts institution and institution-type management
// under the superuser group.
func InstitutionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := institutionController.NewInstitutionController(db)
	typeCtrl := institutionController.NewInstitutionTypeController(db)

	institutions := admin.Group("/institutions")
	institutions.Get("/", ctrl.List)
	institutions.Get("/:id", ctrl.Detail)
	institutions.Post("/", ctrl.Create)
	institutions.Put("/:id", ctrl.Update)
	institutions.Delete("/:id", ctrl.Delete)
	institutions.Patch("/:id/crest", ctrl.UploadCrest)

	types := admin.Group("/institution-types")
	types.Get("/", typeCtrl.List)
	types.Post("/", typeCtrl.Create)
	types.Put("/:id", typeCtrl.Update)
	types.Delete("/:id", typeCtrl.Delete)
}
