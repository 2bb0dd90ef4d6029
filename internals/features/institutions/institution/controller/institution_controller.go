package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigi_backend/internals/configs"
	"sigi_backend/internals/constants"
	directoryModel "sigi_backend/internals/features/directory/model"
	"sigi_backend/internals/features/institutions/institution/dto"
	"sigi_backend/internals/features/institutions/institution/model"
	helper "sigi_backend/internals/helpers"
)

var validate = validator.New()

type InstitutionController struct {
	DB *gorm.DB
}

func NewInstitutionController(db *gorm.DB) *InstitutionController {
	return &InstitutionController{DB: db}
}

/* =========================================================
   GET /api/a/institutions
   ========================================================= */

func (ctrl *InstitutionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.InstitutionModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list institutions")
	}

	var rows []model.InstitutionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Type").
		Preload("Municipality.State").
		Order("institution_generated_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list institutions")
	}

	out := make([]dto.InstitutionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToInstitutionResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"institutions": out,
		"pagination":   helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* =========================================================
   GET /api/a/institutions/:id
   ========================================================= */

func (ctrl *InstitutionController) Detail(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var row model.InstitutionModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Type").
		Preload("Municipality.State").
		First(&row, "institution_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load institution")
	}
	return helper.JsonOK(c, "OK", dto.ToInstitutionResponse(&row))
}

/* =========================================================
   POST /api/a/institutions
   ========================================================= */

func (ctrl *InstitutionController) Create(c *fiber.Ctx) error {
	var body dto.InstitutionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if fields := ctrl.validateInstitution(&body, uuid.Nil); len(fields) > 0 {
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed", fields)
	}

	row := body.ToModelCreate()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		if fields, ok := mapInstitutionConstraint(err); ok {
			return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed", fields)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create institution")
	}
	return helper.JsonCreated(c, "Institution created", dto.ToInstitutionResponse(row))
}

/* =========================================================
   PUT /api/a/institutions/:id
   ========================================================= */

func (ctrl *InstitutionController) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var body dto.InstitutionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if fields := ctrl.validateInstitution(&body, id); len(fields) > 0 {
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed", fields)
	}

	var row model.InstitutionModel
	err := ctrl.DB.First(&row, "institution_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load institution")
	}

	body.ApplyTo(&row)
	// Save, not Updates: the BeforeSave hook recomputes the generated name.
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		if fields, ok := mapInstitutionConstraint(err); ok {
			return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed", fields)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update institution")
	}
	return helper.JsonOK(c, "Institution updated", dto.ToInstitutionResponse(&row))
}

/* =========================================================
   DELETE /api/a/institutions/:id
   Roles/ranks/functions die with the institution (FK cascade); member
   profiles are detached, not deleted (FK set-null).
   ========================================================= */

func (ctrl *InstitutionController) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.InstitutionModel{}, "institution_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete institution")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution not found")
	}
	return helper.JsonOK(c, "Institution deleted", nil)
}

/* =========================================================
   PATCH /api/a/institutions/:id/crest
   multipart: kind=instituicao|municipio, file field "crest"
   ========================================================= */

func (ctrl *InstitutionController) UploadCrest(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	kind := strings.TrimSpace(c.FormValue("kind", constants.CrestInstitution))
	if kind != constants.CrestInstitution && kind != constants.CrestMunicipality {
		return helper.JsonError(c, fiber.StatusBadRequest, "kind must be instituicao or municipio")
	}

	fh, err := c.FormFile("crest")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "crest file is required")
	}

	var row model.InstitutionModel
	err = ctrl.DB.Preload("Municipality.State").First(&row, "institution_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load institution")
	}

	municipalityName, uf := "", ""
	if row.Municipality != nil {
		municipalityName = row.Municipality.MunicipalityName
		uf = row.Municipality.State.StateUF
	}

	relPath := helper.CrestFileName(kind, municipalityName, uf, row.InstitutionID)
	stored, err := helper.SaveCrestWebP(configs.MediaRoot, relPath, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process crest image")
	}

	if kind == constants.CrestInstitution {
		row.InstitutionCrestURL = &stored
	} else {
		row.MunicipalityCrestURL = &stored
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save crest")
	}
	return helper.JsonOK(c, "Crest stored", dto.ToInstitutionResponse(&row))
}

/* =========================================================
   Validation helpers
   ========================================================= */

// validateInstitution re-derives the dependent-select relation and pre-checks
// the uniqueness rules so duplicates surface as field errors before the
// storage constraints fire. selfID excludes the row being updated.
func (ctrl *InstitutionController) validateInstitution(body *dto.InstitutionRequest, selfID uuid.UUID) map[string]string {
	fields := map[string]string{}

	// The municipality must belong to the state declared in the same
	// submission; the client-narrowed choice set is not trusted.
	var mun directoryModel.MunicipalityModel
	err := ctrl.DB.First(&mun, "municipality_id = ?", body.InstitutionMunicipalityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fields["institution_municipality_id"] = "unknown municipality"
	} else if err == nil && mun.MunicipalityStateID != body.InstitutionStateID {
		fields["institution_municipality_id"] = "municipality does not belong to the selected state"
	}

	if body.InstitutionTypeID != nil {
		var count int64
		q := ctrl.DB.Model(&model.InstitutionModel{}).
			Where("institution_type_id = ? AND institution_municipality_id = ?",
				*body.InstitutionTypeID, body.InstitutionMunicipalityID)
		if selfID != uuid.Nil {
			q = q.Where("institution_id <> ?", selfID)
		}
		if q.Count(&count); count > 0 {
			fields["institution_type_id"] = "an institution of this type already exists in this municipality"
		}
	}

	if body.InstitutionCNPJ != nil && *body.InstitutionCNPJ != "" {
		var count int64
		q := ctrl.DB.Model(&model.InstitutionModel{}).
			Where("institution_cnpj = ?", *body.InstitutionCNPJ)
		if selfID != uuid.Nil {
			q = q.Where("institution_id <> ?", selfID)
		}
		if q.Count(&count); count > 0 {
			fields["institution_cnpj"] = "CNPJ already registered"
		}
	}

	return fields
}

// mapInstitutionConstraint is the backstop for races the pre-checks missed.
func mapInstitutionConstraint(err error) (map[string]string, bool) {
	switch {
	case helper.IsUniqueViolation(err, "uq_institutions_type_municipality"):
		return map[string]string{"institution_type_id": "an institution of this type already exists in this municipality"}, true
	case helper.IsUniqueViolation(err, "uq_institutions_cnpj"):
		return map[string]string{"institution_cnpj": "CNPJ already registered"}, true
	case helper.IsForeignKeyViolation(err):
		return map[string]string{"institution_municipality_id": "referenced row does not exist"}, true
	}
	return nil, false
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
