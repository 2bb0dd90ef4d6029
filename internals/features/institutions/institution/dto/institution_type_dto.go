package dto

import (
	"time"

	"github.com/google/uuid"

	"sigi_backend/internals/features/institutions/institution/model"
)

type InstitutionTypeRequest struct {
	InstitutionTypeName string `json:"institution_type_name" validate:"required,min=2,max=150"`
}

type InstitutionTypeResponse struct {
	InstitutionTypeID        uuid.UUID `json:"institution_type_id"`
	InstitutionTypeName      string    `json:"institution_type_name"`
	InstitutionTypeCreatedAt time.Time `json:"institution_type_created_at"`
	InstitutionTypeUpdatedAt time.Time `json:"institution_type_updated_at"`
}

func ToInstitutionTypeResponse(m *model.InstitutionTypeModel) InstitutionTypeResponse {
	return InstitutionTypeResponse{
		InstitutionTypeID:        m.InstitutionTypeID,
		InstitutionTypeName:      m.InstitutionTypeName,
		InstitutionTypeCreatedAt: m.InstitutionTypeCreatedAt,
		InstitutionTypeUpdatedAt: m.InstitutionTypeUpdatedAt,
	}
}
