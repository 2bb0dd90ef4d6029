package model

import (
	"time"

	"github.com/google/uuid"

	institutionModel "sigi_backend/internals/features/institutions/institution/model"
)

// RoleModel is one of the three per-institution classification axes
// (role / rank / function). Names are unique within the owning institution
// and rows die with it.
type RoleModel struct {
	RoleID            uuid.UUID `gorm:"column:role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_id"`
	RoleInstitutionID uuid.UUID `gorm:"column:role_institution_id;type:uuid;not null;uniqueIndex:uq_roles_institution_name;index" json:"role_institution_id"`
	RoleName          string    `gorm:"column:role_name;type:varchar(100);not null;uniqueIndex:uq_roles_institution_name" json:"role_name"`

	Institution institutionModel.InstitutionModel `gorm:"foreignKey:RoleInstitutionID;references:InstitutionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"institution,omitempty"`

	RoleCreatedAt time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt time.Time `gorm:"column:role_updated_at;autoUpdateTime" json:"role_updated_at"`
}

func (RoleModel) TableName() string {
	return "roles"
}
