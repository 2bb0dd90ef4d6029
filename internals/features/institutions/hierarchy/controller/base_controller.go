package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "sigi_backend/internals/helpers"
	featuresMiddleware "sigi_backend/internals/middlewares/features"
)

var validate = validator.New()

// baseController is shared by the three hierarchy controllers. The owning
// institution comes from the path (already resolved and authorized by the
// IsInstitutionAdmin middleware) and is injected into every created row and
// every query, so rows from other institutions are unreachable here.
type baseController struct {
	DB *gorm.DB
}

// institutionID pulls the scope stored by the middleware, falling back to the
// path parameter so the controllers also work when mounted standalone.
func (ctrl *baseController) institutionID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := featuresMiddleware.InstitutionIDFromLocals(c); ok {
		return id, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("institution_id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "institution_id is not a valid UUID")
	}
	return id, nil
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// nameTaken checks per-institution name uniqueness case-insensitively.
// selfCol/selfID exclude the row being updated; pass uuid.Nil on create.
func (ctrl *baseController) nameTaken(table, nameCol, instCol string, institutionID uuid.UUID, name string, selfCol string, selfID uuid.UUID) (bool, error) {
	q := ctrl.DB.Table(table).
		Where(instCol+" = ?", institutionID).
		Where("LOWER("+nameCol+") = LOWER(?)", strings.TrimSpace(name))
	if selfID != uuid.Nil {
		q = q.Where(selfCol+" <> ?", selfID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func jsonNameTaken(c *fiber.Ctx, field string) error {
	return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
		map[string]string{field: "name already in use within this institution"})
}
