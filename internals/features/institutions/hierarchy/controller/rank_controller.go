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

type RankController struct {
	baseController
}

func NewRankController(db *gorm.DB) *RankController {
	return &RankController{baseController{DB: db}}
}

// GET /api/i/:institution_id/ranks, ordered by rank_order for hierarchy display.
func (ctrl *RankController) List(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}

	var rows []model.RankModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("rank_institution_id = ?", institutionID).
		Order("rank_order ASC, rank_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list ranks")
	}

	out := make([]dto.RankResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToRankResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/i/:institution_id/ranks
func (ctrl *RankController) Create(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}

	var body dto.RankRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	taken, err := ctrl.nameTaken("ranks", "rank_name", "rank_institution_id", institutionID, body.RankName, "rank_id", uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create rank")
	}
	if taken {
		return jsonNameTaken(c, "rank_name")
	}

	row := model.RankModel{
		RankInstitutionID: institutionID,
		RankName:          body.RankName,
		RankOrder:         body.RankOrder,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_ranks_institution_name") {
			return jsonNameTaken(c, "rank_name")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create rank")
	}
	return helper.JsonCreated(c, "Rank created", dto.ToRankResponse(&row))
}

// PUT /api/i/:institution_id/ranks/:id
func (ctrl *RankController) Update(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var body dto.RankRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.RankModel
	err = ctrl.DB.First(&row, "rank_id = ? AND rank_institution_id = ?", id, institutionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Rank not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load rank")
	}

	taken, err := ctrl.nameTaken("ranks", "rank_name", "rank_institution_id", institutionID, body.RankName, "rank_id", id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update rank")
	}
	if taken {
		return jsonNameTaken(c, "rank_name")
	}

	row.RankName = body.RankName
	row.RankOrder = body.RankOrder
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update rank")
	}
	return helper.JsonOK(c, "Rank updated", dto.ToRankResponse(&row))
}

// DELETE /api/i/:institution_id/ranks/:id
func (ctrl *RankController) Delete(c *fiber.Ctx) error {
	institutionID, err := ctrl.institutionID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.RankModel{}, "rank_id = ? AND rank_institution_id = ?", id, institutionID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete rank")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Rank not found")
	}
	return helper.JsonOK(c, "Rank deleted", nil)
}
