package features

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	institutionModel "sigi_backend/internals/features/institutions/institution/model"
	helper "sigi_backend/internals/helpers"
	authMiddleware "sigi_backend/internals/middlewares/auth"
	"sigi_backend/internals/policy"
)

// LocalsInstitutionID holds the institution resolved from the request path.
const LocalsInstitutionID = "institution_id"

// IsInstitutionAdmin guards the per-institution surface
// (/api/i/:institution_id/...): superuser, or an institution admin of the
// institution named in the path. The institution must exist; an unknown id is
// a hard 404 like any direct object lookup.
func IsInstitutionAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := authMiddleware.ActorFromLocals(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		raw := strings.TrimSpace(c.Params("institution_id"))
		institutionID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "institution_id is not a valid UUID")
		}

		var inst institutionModel.InstitutionModel
		if err := db.Select("institution_id").First(&inst, "institution_id = ?", institutionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Institution not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		if d := policy.InstitutionAdmin(actor, institutionID); !d.Allowed {
			return helper.JsonError(c, fiber.StatusForbidden, d.Reason)
		}

		c.Locals(LocalsInstitutionID, institutionID.String())
		return c.Next()
	}
}

// InstitutionIDFromLocals returns the institution id stored by
// IsInstitutionAdmin.
func InstitutionIDFromLocals(c *fiber.Ctx) (uuid.UUID, bool) {
	raw, ok := c.Locals(LocalsInstitutionID).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
