package model

import (
	"time"

	"github.com/google/uuid"
)

// InstitutionTypeModel is a global classification label ("Guarda Civil
// Municipal", "Defesa Civil", ...), managed independently of any institution.
type InstitutionTypeModel struct {
	InstitutionTypeID   uuid.UUID `gorm:"column:institution_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"institution_type_id"`
	InstitutionTypeName string    `gorm:"column:institution_type_name;type:varchar(150);uniqueIndex:uq_institution_types_name;not null" json:"institution_type_name"`

	InstitutionTypeCreatedAt time.Time `gorm:"column:institution_type_created_at;autoCreateTime" json:"institution_type_created_at"`
	InstitutionTypeUpdatedAt time.Time `gorm:"column:institution_type_updated_at;autoUpdateTime" json:"institution_type_updated_at"`
}

func (InstitutionTypeModel) TableName() string {
	return "institution_types"
}
