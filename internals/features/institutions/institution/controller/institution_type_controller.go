package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigi_backend/internals/features/institutions/institution/dto"
	"sigi_backend/internals/features/institutions/institution/model"
	helper "sigi_backend/internals/helpers"
)

type InstitutionTypeController struct {
	DB *gorm.DB
}

func NewInstitutionTypeController(db *gorm.DB) *InstitutionTypeController {
	return &InstitutionTypeController{DB: db}
}

// GET /api/a/institution-types
func (ctrl *InstitutionTypeController) List(c *fiber.Ctx) error {
	var rows []model.InstitutionTypeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("institution_type_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list institution types")
	}

	out := make([]dto.InstitutionTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToInstitutionTypeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/a/institution-types
func (ctrl *InstitutionTypeController) Create(c *fiber.Ctx) error {
	var body dto.InstitutionTypeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	ctrl.DB.Model(&model.InstitutionTypeModel{}).
		Where("LOWER(institution_type_name) = LOWER(?)", body.InstitutionTypeName).
		Count(&count)
	if count > 0 {
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
			map[string]string{"institution_type_name": "name already in use"})
	}

	row := model.InstitutionTypeModel{InstitutionTypeName: body.InstitutionTypeName}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err, "") {
			return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed",
				map[string]string{"institution_type_name": "name already in use"})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create institution type")
	}
	return helper.JsonCreated(c, "Institution type created", dto.ToInstitutionTypeResponse(&row))
}

// PUT /api/a/institution-types/:id
func (ctrl *InstitutionTypeController) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var body dto.InstitutionTypeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.InstitutionTypeModel
	err := ctrl.DB.First(&row, "institution_type_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution type not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load institution type")
	}

	var count int64
	ctrl.DB.Model(&model.InstitutionTypeModel{}).
		Where("LOWER(institution_type_name) = LOWER(?) AND institution_type_id <> ?", body.InstitutionTypeName, id).
		Count(&count)
	if count > 0 {
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
			map[string]string{"institution_type_name": "name already in use"})
	}

	row.InstitutionTypeName = body.InstitutionTypeName
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update institution type")
	}
	return helper.JsonOK(c, "Institution type updated", dto.ToInstitutionTypeResponse(&row))
}

// DELETE /api/a/institution-types/:id
//
// Deleting a type still referenced by an institution is rejected, never
// cascaded: pre-checked here, with the RESTRICT constraint as backstop.
func (ctrl *InstitutionTypeController) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var refs int64
	if err := ctrl.DB.Model(&model.InstitutionModel{}).
		Where("institution_type_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete institution type")
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Institution type is still in use")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.InstitutionTypeModel{}, "institution_type_id = ?", id)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Institution type is still in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete institution type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution type not found")
	}
	return helper.JsonOK(c, "Institution type deleted", nil)
}
