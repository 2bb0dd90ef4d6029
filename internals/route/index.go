package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "sigi_backend/internals/route/details"

	authMiddleware "sigi_backend/internals/middlewares/auth"
	featuresMiddleware "sigi_backend/internals/middlewares/features"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserSelfRoutes(user, db)
	routeDetails.DirectoryRoutes(user, db)

	// ===================== ADMIN (GLOBAL, superuser) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.IsSuperuser(),
	)
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.InstitutionAdminRoutes(admin, db)

	// ===================== INSTITUTION (scoped) =====================
	log.Println("[INFO] Setting up INSTITUTION group...")
	inst := app.Group("/api/i/:institution_id",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.IsInstitutionAdmin(db),
	)
	routeDetails.InstitutionScopedRoutes(inst, db)
}
