package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sigi_backend/internals/features/institutions/institution/model"
)

// =========================
// Requests
// =========================

// InstitutionRequest declares the parent state alongside the municipality so
// the server can re-check the dependency itself; the client-narrowed select is
// never trusted.
type InstitutionRequest struct {
	InstitutionTypeID         *uuid.UUID      `json:"institution_type_id"`
	InstitutionStateID        uuid.UUID       `json:"institution_state_id" validate:"required"`
	InstitutionMunicipalityID uuid.UUID       `json:"institution_municipality_id" validate:"required"`
	InstitutionCNPJ           *string         `json:"institution_cnpj" validate:"omitempty,min=14,max=18"`
	InstitutionContact        *string         `json:"institution_contact" validate:"omitempty,max=100"`
	InstitutionEmail          *string         `json:"institution_email" validate:"omitempty,email"`
	InstitutionPlan           *string         `json:"institution_plan" validate:"omitempty,max=50"`
	InstitutionAddress        json.RawMessage `json:"institution_address"`
}

func (r *InstitutionRequest) ToModelCreate() *model.InstitutionModel {
	m := &model.InstitutionModel{
		InstitutionTypeID:         r.InstitutionTypeID,
		InstitutionMunicipalityID: r.InstitutionMunicipalityID,
		InstitutionCNPJ:           r.InstitutionCNPJ,
		InstitutionContact:        r.InstitutionContact,
		InstitutionEmail:          r.InstitutionEmail,
		InstitutionPlan:           r.InstitutionPlan,
	}
	if len(r.InstitutionAddress) > 0 {
		m.InstitutionAddress = datatypes.JSON(r.InstitutionAddress)
	}
	return m
}

// ApplyTo copies the request over an existing row, for update-then-save.
func (r *InstitutionRequest) ApplyTo(m *model.InstitutionModel) {
	m.InstitutionTypeID = r.InstitutionTypeID
	m.InstitutionMunicipalityID = r.InstitutionMunicipalityID
	m.InstitutionCNPJ = r.InstitutionCNPJ
	m.InstitutionContact = r.InstitutionContact
	m.InstitutionEmail = r.InstitutionEmail
	m.InstitutionPlan = r.InstitutionPlan
	if len(r.InstitutionAddress) > 0 {
		m.InstitutionAddress = datatypes.JSON(r.InstitutionAddress)
	}
}

// =========================
// Responses
// =========================

type InstitutionResponse struct {
	InstitutionID             uuid.UUID       `json:"institution_id"`
	InstitutionTypeID         *uuid.UUID      `json:"institution_type_id,omitempty"`
	InstitutionMunicipalityID uuid.UUID       `json:"institution_municipality_id"`
	InstitutionGeneratedName  string          `json:"institution_generated_name"`
	InstitutionTypeName       string          `json:"institution_type_name,omitempty"`
	MunicipalityName          string          `json:"municipality_name,omitempty"`
	StateUF                   string          `json:"state_uf,omitempty"`
	InstitutionCNPJ           *string         `json:"institution_cnpj,omitempty"`
	InstitutionContact        *string         `json:"institution_contact,omitempty"`
	InstitutionEmail          *string         `json:"institution_email,omitempty"`
	InstitutionPlan           *string         `json:"institution_plan,omitempty"`
	InstitutionAddress        json.RawMessage `json:"institution_address,omitempty"`
	InstitutionCrestURL       *string         `json:"institution_crest_url,omitempty"`
	MunicipalityCrestURL      *string         `json:"municipality_crest_url,omitempty"`
	InstitutionCreatedAt      time.Time       `json:"institution_created_at"`
	InstitutionUpdatedAt      time.Time       `json:"institution_updated_at"`
}

func ToInstitutionResponse(m *model.InstitutionModel) InstitutionResponse {
	resp := InstitutionResponse{
		InstitutionID:             m.InstitutionID,
		InstitutionTypeID:         m.InstitutionTypeID,
		InstitutionMunicipalityID: m.InstitutionMunicipalityID,
		InstitutionGeneratedName:  m.InstitutionGeneratedName,
		InstitutionCNPJ:           m.InstitutionCNPJ,
		InstitutionContact:        m.InstitutionContact,
		InstitutionEmail:          m.InstitutionEmail,
		InstitutionPlan:           m.InstitutionPlan,
		InstitutionCrestURL:       m.InstitutionCrestURL,
		MunicipalityCrestURL:      m.MunicipalityCrestURL,
		InstitutionCreatedAt:      m.InstitutionCreatedAt,
		InstitutionUpdatedAt:      m.InstitutionUpdatedAt,
	}
	if len(m.InstitutionAddress) > 0 {
		resp.InstitutionAddress = json.RawMessage(m.InstitutionAddress)
	}
	if m.Type != nil {
		resp.InstitutionTypeName = m.Type.InstitutionTypeName
	}
	if m.Municipality != nil {
		resp.MunicipalityName = m.Municipality.MunicipalityName
		resp.StateUF = m.Municipality.State.StateUF
	}
	return resp
}
