package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigi_backend/internals/constants"
	institutionModel "sigi_backend/internals/features/institutions/institution/model"
	helper "sigi_backend/internals/helpers"
	contextHelper "sigi_backend/internals/helpers/auth"
	"sigi_backend/internals/middlewares"
	authMiddleware "sigi_backend/internals/middlewares/auth"
	"sigi_backend/internals/policy"
)

// ContextController lets a superuser pick which institution they are managing.
// The choice lives in the session, never on the profile.
type ContextController struct {
	DB *gorm.DB
}

func NewContextController(db *gorm.DB) *ContextController {
	return &ContextController{DB: db}
}

// GET /api/u/context
func (ctrl *ContextController) GetContext(c *fiber.Ctx) error {
	actor, ok := authMiddleware.ActorFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	inst, err := contextHelper.ResolveActiveInstitution(c, ctrl.DB, actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve context")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"managing_institution": inst,
		"is_superuser":         actor.IsSuperuser,
	})
}

// POST /api/u/context/institutions/:id/enter
// The capability re-check runs before anything else; a non-superuser gets 403
// and the session is never touched.
func (ctrl *ContextController) EnterInstitution(c *fiber.Ctx) error {
	actor, ok := authMiddleware.ActorFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if d := policy.SuperuserOnly(actor); !d.Allowed {
		return helper.JsonError(c, fiber.StatusForbidden, d.Reason)
	}

	institutionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var inst institutionModel.InstitutionModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Select("institution_id", "institution_generated_name").
		First(&inst, "institution_id = ?", institutionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enter context")
	}

	sess, err := middlewares.GetSession(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enter context")
	}
	sess.Set(constants.SessionManagingInstitutionID, inst.InstitutionID.String())
	if err := sess.Save(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enter context")
	}

	return helper.JsonOK(c, "Context set", fiber.Map{
		"managing_institution": contextHelper.ActiveInstitution{
			ID:   inst.InstitutionID,
			Name: inst.InstitutionGeneratedName,
		},
	})
}

// POST /api/u/context/exit
func (ctrl *ContextController) ExitInstitution(c *fiber.Ctx) error {
	actor, ok := authMiddleware.ActorFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if d := policy.SuperuserOnly(actor); !d.Allowed {
		return helper.JsonError(c, fiber.StatusForbidden, d.Reason)
	}

	sess, err := middlewares.GetSession(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to exit context")
	}
	sess.Delete(constants.SessionManagingInstitutionID)
	if err := sess.Save(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to exit context")
	}

	return helper.JsonOK(c, "Context cleared", nil)
}
