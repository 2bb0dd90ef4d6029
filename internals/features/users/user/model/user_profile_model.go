package model

import (
	"time"

	"github.com/google/uuid"

	hierarchyModel "sigi_backend/internals/features/institutions/hierarchy/model"
	institutionModel "sigi_backend/internals/features/institutions/institution/model"
)

// UserProfileModel extends a user with institutional affiliation. A profile
// always exists for a user (created in the same transaction); the institution
// link is optional, "unaffiliated" is a valid state. When the institution is
// deleted the link is nulled and the profile survives.
//
// Role/rank/functions must belong to the profile's institution; this is
// enforced at the service layer, the storage layer only knows the FKs.
type UserProfileModel struct {
	UserProfileID     uuid.UUID `gorm:"column:user_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_profile_id"`
	UserProfileUserID uuid.UUID `gorm:"column:user_profile_user_id;type:uuid;not null;uniqueIndex:uq_user_profiles_user_id" json:"user_profile_user_id"`

	UserProfileInstitutionID *uuid.UUID `gorm:"column:user_profile_institution_id;type:uuid;index" json:"user_profile_institution_id,omitempty"`
	UserProfileRoleID        *uuid.UUID `gorm:"column:user_profile_role_id;type:uuid" json:"user_profile_role_id,omitempty"`
	UserProfileRankID        *uuid.UUID `gorm:"column:user_profile_rank_id;type:uuid" json:"user_profile_rank_id,omitempty"`

	User        UserModel                          `gorm:"foreignKey:UserProfileUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Institution *institutionModel.InstitutionModel `gorm:"foreignKey:UserProfileInstitutionID;references:InstitutionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"institution,omitempty"`
	Role        *hierarchyModel.RoleModel          `gorm:"foreignKey:UserProfileRoleID;references:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"role,omitempty"`
	Rank        *hierarchyModel.RankModel          `gorm:"foreignKey:UserProfileRankID;references:RankID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"rank,omitempty"`
	Functions   []hierarchyModel.FunctionModel     `gorm:"many2many:user_profile_functions;constraint:OnDelete:CASCADE" json:"functions,omitempty"`

	UserProfileCPF      *string `gorm:"column:user_profile_cpf;type:varchar(14);uniqueIndex:uq_user_profiles_cpf" json:"user_profile_cpf,omitempty"`
	UserProfilePhone    *string `gorm:"column:user_profile_phone;type:varchar(20)" json:"user_profile_phone,omitempty"`
	UserProfilePhotoURL *string `gorm:"column:user_profile_photo_url;type:text" json:"user_profile_photo_url,omitempty"`

	UserProfileStatus             string `gorm:"column:user_profile_status;type:varchar(10);not null;default:'unlinked'" json:"user_profile_status"`
	UserProfileIsInstitutionAdmin bool   `gorm:"column:user_profile_is_institution_admin;not null;default:false" json:"user_profile_is_institution_admin"`

	UserProfileCreatedAt time.Time `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt time.Time `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
