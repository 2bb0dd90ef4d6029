package dto

import (
	"time"

	"github.com/google/uuid"

	"sigi_backend/internals/features/institutions/hierarchy/model"
)

// =========================
// Requests
// =========================

type RoleRequest struct {
	RoleName string `json:"role_name" validate:"required,min=2,max=100"`
}

type RankRequest struct {
	RankName  string `json:"rank_name" validate:"required,min=2,max=100"`
	RankOrder int    `json:"rank_order" validate:"gte=0"`
}

type FunctionRequest struct {
	FunctionName string `json:"function_name" validate:"required,min=2,max=100"`
}

// =========================
// Responses
// =========================

type RoleResponse struct {
	RoleID            uuid.UUID `json:"role_id"`
	RoleInstitutionID uuid.UUID `json:"role_institution_id"`
	RoleName          string    `json:"role_name"`
	RoleCreatedAt     time.Time `json:"role_created_at"`
	RoleUpdatedAt     time.Time `json:"role_updated_at"`
}

type RankResponse struct {
	RankID            uuid.UUID `json:"rank_id"`
	RankInstitutionID uuid.UUID `json:"rank_institution_id"`
	RankName          string    `json:"rank_name"`
	RankOrder         int       `json:"rank_order"`
	RankCreatedAt     time.Time `json:"rank_created_at"`
	RankUpdatedAt     time.Time `json:"rank_updated_at"`
}

type FunctionResponse struct {
	FunctionID            uuid.UUID `json:"function_id"`
	FunctionInstitutionID uuid.UUID `json:"function_institution_id"`
	FunctionName          string    `json:"function_name"`
	FunctionCreatedAt     time.Time `json:"function_created_at"`
	FunctionUpdatedAt     time.Time `json:"function_updated_at"`
}

func ToRoleResponse(m *model.RoleModel) RoleResponse {
	return RoleResponse{
		RoleID:            m.RoleID,
		RoleInstitutionID: m.RoleInstitutionID,
		RoleName:          m.RoleName,
		RoleCreatedAt:     m.RoleCreatedAt,
		RoleUpdatedAt:     m.RoleUpdatedAt,
	}
}

func ToRankResponse(m *model.RankModel) RankResponse {
	return RankResponse{
		RankID:            m.RankID,
		RankInstitutionID: m.RankInstitutionID,
		RankName:          m.RankName,
		RankOrder:         m.RankOrder,
		RankCreatedAt:     m.RankCreatedAt,
		RankUpdatedAt:     m.RankUpdatedAt,
	}
}

func ToFunctionResponse(m *model.FunctionModel) FunctionResponse {
	return FunctionResponse{
		FunctionID:            m.FunctionID,
		FunctionInstitutionID: m.FunctionInstitutionID,
		FunctionName:          m.FunctionName,
		FunctionCreatedAt:     m.FunctionCreatedAt,
		FunctionUpdatedAt:     m.FunctionUpdatedAt,
	}
}
