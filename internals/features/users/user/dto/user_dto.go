package dto

import (
	"time"

	"github.com/google/uuid"

	hierarchyModel "sigi_backend/internals/features/institutions/hierarchy/model"
	"sigi_backend/internals/features/users/user/model"
)

// ===================== REQUESTS =====================

// UserCreateRequest creates the user and its profile in one shot.
type UserCreateRequest struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`

	Profile UserProfileRequest `json:"profile"`
}

// UserUpdateRequest never touches the password; that goes through auth.
type UserUpdateRequest struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	IsActive  *bool  `json:"is_active"`

	Profile UserProfileRequest `json:"profile"`
}

type UserProfileRequest struct {
	InstitutionID *uuid.UUID  `json:"institution_id"`
	RoleID        *uuid.UUID  `json:"role_id"`
	RankID        *uuid.UUID  `json:"rank_id"`
	FunctionIDs   []uuid.UUID `json:"function_ids"`

	CPF      *string `json:"cpf" validate:"omitempty,max=14"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	PhotoURL *string `json:"photo_url"`

	Status             *string `json:"status" validate:"omitempty,oneof=unlinked pending active rejected"`
	IsInstitutionAdmin *bool   `json:"is_institution_admin"`
}

// ===================== RESPONSES =====================

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`

	Profile *UserProfileResponse `json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserProfileResponse struct {
	UserProfileID uuid.UUID `json:"user_profile_id"`

	InstitutionID   *uuid.UUID `json:"institution_id,omitempty"`
	InstitutionName string     `json:"institution_name,omitempty"`
	RoleID          *uuid.UUID `json:"role_id,omitempty"`
	RoleName        string     `json:"role_name,omitempty"`
	RankID          *uuid.UUID `json:"rank_id,omitempty"`
	RankName        string     `json:"rank_name,omitempty"`

	Functions []FunctionItem `json:"functions"`

	CPF      *string `json:"cpf,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`

	Status             string `json:"status"`
	IsInstitutionAdmin bool   `json:"is_institution_admin"`
}

type FunctionItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ===================== CONVERTERS =====================

func ToUserResponse(u *model.UserModel, p *model.UserProfileModel) UserResponse {
	out := UserResponse{
		ID:          u.ID,
		UserName:    u.UserName,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if p != nil {
		out.Profile = toProfileResponse(p)
	}
	return out
}

func toProfileResponse(p *model.UserProfileModel) *UserProfileResponse {
	out := &UserProfileResponse{
		UserProfileID:      p.UserProfileID,
		InstitutionID:      p.UserProfileInstitutionID,
		RoleID:             p.UserProfileRoleID,
		RankID:             p.UserProfileRankID,
		Functions:          toFunctionItems(p.Functions),
		CPF:                p.UserProfileCPF,
		Phone:              p.UserProfilePhone,
		PhotoURL:           p.UserProfilePhotoURL,
		Status:             p.UserProfileStatus,
		IsInstitutionAdmin: p.UserProfileIsInstitutionAdmin,
	}
	if p.Institution != nil {
		out.InstitutionName = p.Institution.InstitutionGeneratedName
	}
	if p.Role != nil {
		out.RoleName = p.Role.RoleName
	}
	if p.Rank != nil {
		out.RankName = p.Rank.RankName
	}
	return out
}

func toFunctionItems(fns []hierarchyModel.FunctionModel) []FunctionItem {
	out := make([]FunctionItem, 0, len(fns))
	for i := range fns {
		out = append(out, FunctionItem{ID: fns[i].FunctionID, Name: fns[i].FunctionName})
	}
	return out
}
