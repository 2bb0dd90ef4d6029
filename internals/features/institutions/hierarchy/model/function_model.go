package model

import (
	"time"

	"github.com/google/uuid"

	institutionModel "sigi_backend/internals/features/institutions/institution/model"
)

type FunctionModel struct {
	FunctionID            uuid.UUID `gorm:"column:function_id;type:uuid;default:gen_random_uuid();primaryKey" json:"function_id"`
	FunctionInstitutionID uuid.UUID `gorm:"column:function_institution_id;type:uuid;not null;uniqueIndex:uq_functions_institution_name;index" json:"function_institution_id"`
	FunctionName          string    `gorm:"column:function_name;type:varchar(100);not null;uniqueIndex:uq_functions_institution_name" json:"function_name"`

	Institution institutionModel.InstitutionModel `gorm:"foreignKey:FunctionInstitutionID;references:InstitutionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"institution,omitempty"`

	FunctionCreatedAt time.Time `gorm:"column:function_created_at;autoCreateTime" json:"function_created_at"`
	FunctionUpdatedAt time.Time `gorm:"column:function_updated_at;autoUpdateTime" json:"function_updated_at"`
}

func (FunctionModel) TableName() string {
	return "functions"
}
