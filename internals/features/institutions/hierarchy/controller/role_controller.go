package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigi_backend/internals/features/institutions/hierarchy/dto"
	"sigi_backend/internals/features/institutions/hierarchy/model"
	helper "sigi_backend/internals/helpers"
)

type RoleController struct {
	baseController
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{baseController{DB: db}}
}

// GET /api/i/:institution_id/roles
func (ctrl *RoleController) List(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}

	var rows []model.RoleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("role_institution_id = ?", institutionID).
		Order("role_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list roles")
	}

	out := make([]dto.RoleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToRoleResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/i/:institution_id/roles
func (ctrl *RoleController) Create(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}

	var body dto.RoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	taken, err := ctrl.nameTaken("roles", "role_name", "role_institution_id", institutionID, body.RoleName, "role_id", uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create role")
	}
	if taken {
		return jsonNameTaken(c, "role_name")
	}

	row := model.RoleModel{
		RoleInstitutionID: institutionID,
		RoleName:          body.RoleName,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_roles_institution_name") {
			return jsonNameTaken(c, "role_name")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create role")
	}
	return helper.JsonCreated(c, "Role created", dto.ToRoleResponse(&row))
}

// PUT /api/i/:institution_id/roles/:id
func (ctrl *RoleController) Update(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var body dto.RoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.RoleModel
	err = ctrl.DB.First(&row, "role_id = ? AND role_institution_id = ?", id, institutionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load role")
	}

	taken, err := ctrl.nameTaken("roles", "role_name", "role_institution_id", institutionID, body.RoleName, "role_id", id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	if taken {
		return jsonNameTaken(c, "role_name")
	}

	row.RoleName = body.RoleName
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	return helper.JsonOK(c, "Role updated", dto.ToRoleResponse(&row))
}

// DELETE /api/i/:institution_id/roles/:id
func (ctrl *RoleController) Delete(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.RoleModel{}, "role_id = ? AND role_institution_id = ?", id, institutionID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	}
	return helper.JsonOK(c, "Role deleted", nil)
}
