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

type FunctionController struct {
	baseController
}

func NewFunctionController(db *gorm.DB) *FunctionController {
	return &FunctionController{baseController{DB: db}}
}

// GET /api/i/:institution_id/functions
func (ctrl *FunctionController) List(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}

	var rows []model.FunctionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("function_institution_id = ?", institutionID).
		Order("function_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list functions")
	}

	out := make([]dto.FunctionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToFunctionResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/i/:institution_id/functions
func (ctrl *FunctionController) Create(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}

	var body dto.FunctionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	taken, err := ctrl.nameTaken("functions", "function_name", "function_institution_id", institutionID, body.FunctionName, "function_id", uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create function")
	}
	if taken {
		return jsonNameTaken(c, "function_name")
	}

	row := model.FunctionModel{
		FunctionInstitutionID: institutionID,
		FunctionName:          body.FunctionName,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_functions_institution_name") {
			return jsonNameTaken(c, "function_name")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create function")
	}
	return helper.JsonCreated(c, "Function created", dto.ToFunctionResponse(&row))
}

// PUT /api/i/:institution_id/functions/:id
func (ctrl *FunctionController) Update(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var body dto.FunctionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.FunctionModel
	err = ctrl.DB.First(&row, "function_id = ? AND function_institution_id = ?", id, institutionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Function not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load function")
	}

	taken, err := ctrl.nameTaken("functions", "function_name", "function_institution_id", institutionID, body.FunctionName, "function_id", id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update function")
	}
	if taken {
		return jsonNameTaken(c, "function_name")
	}

	row.FunctionName = body.FunctionName
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update function")
	}
	return helper.JsonOK(c, "Function updated", dto.ToFunctionResponse(&row))
}

// DELETE /api/i/:institution_id/functions/:id
func (ctrl *FunctionController) Delete(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.FunctionModel{}, "function_id = ? AND function_institution_id = ?", id, institutionID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete function")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Function not found")
	}
	return helper.JsonOK(c, "Function deleted", nil)
}
