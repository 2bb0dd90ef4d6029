package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigi_backend/internals/features/directory/dto"
	"sigi_backend/internals/features/directory/model"
	helper "sigi_backend/internals/helpers"
)

type DirectoryController struct {
	DB *gorm.DB
}

func NewDirectoryController(db *gorm.DB) *DirectoryController {
	return &DirectoryController{DB: db}
}

// GET /api/u/states
func (ctrl *DirectoryController) ListStates(c *fiber.Ctx) error {
	var states []model.StateModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("state_name ASC").
		Find(&states).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list states")
	}

	out := make([]dto.StateResponse, 0, len(states))
	for i := range states {
		out = append(out, dto.ToStateResponse(&states[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/u/municipalities?state_id=
//
// Dependent-select lookup: returns the {id, name} municipalities of one state.
// An absent or malformed state_id yields an empty array, not an error, so the
// client select can simply render nothing.
func (ctrl *DirectoryController) MunicipalitiesByState(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("state_id"))
	if raw == "" {
		return helper.JsonOK(c, "OK", []dto.MunicipalityOption{})
	}
	stateID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonOK(c, "OK", []dto.MunicipalityOption{})
	}

	var municipalities []model.MunicipalityModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("municipality_state_id = ?", stateID).
		Order("municipality_name ASC").
		Find(&municipalities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list municipalities")
	}
	return helper.JsonOK(c, "OK", dto.ToMunicipalityOptions(municipalities))
}
