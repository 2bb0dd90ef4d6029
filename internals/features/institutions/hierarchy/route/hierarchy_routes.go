package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hierarchyController "sigi_backend/internals/features/institutions/hierarchy/controller"
)

// HierarchyRoutes mounts the per-institution role/rank/function management
// under /api/i/:institution_id.
func HierarchyRoutes(inst fiber.Router, db *gorm.DB) {
	roleCtrl := hierarchyController.NewRoleController(db)
	rankCtrl := hierarchyController.NewRankController(db)
	fnCtrl := hierarchyController.NewFunctionController(db)

	roles := inst.Group("/roles")
	roles.Get("/", roleCtrl.List)
	roles.Post("/", roleCtrl.Create)
	roles.Put("/:id", roleCtrl.Update)
	roles.Delete("/:id", roleCtrl.Delete)

	ranks := inst.Group("/ranks")
	ranks.Get("/", rankCtrl.List)
	ranks.Post("/", rankCtrl.Create)
	ranks.Put("/:id", rankCtrl.Update)
	ranks.Delete("/:id", rankCtrl.Delete)

	functions := inst.Group("/functions")
	functions.Get("/", fnCtrl.List)
	functions.Post("/", fnCtrl.Create)
	functions.Put("/:id", fnCtrl.Update)
	functions.Delete("/:id", fnCtrl.Delete)
}
