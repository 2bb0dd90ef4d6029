package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hierarchyRoute "sigi_backend/internals/features/institutions/hierarchy/route"
	institutionRoute "sigi_backend/internals/features/institutions/institution/route"
)

// InstitutionAdminRoutes covers global institution management (superuser).
func InstitutionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	institutionRoute.InstitutionAdminRoutes(admin, db)
}

// InstitutionScopedRoutes covers the per-institution surface under
// /api/i/:institution_id.
func InstitutionScopedRoutes(inst fiber.Router, db *gorm.DB) {
	hierarchyRoute.HierarchyRoutes(inst, db)
}
