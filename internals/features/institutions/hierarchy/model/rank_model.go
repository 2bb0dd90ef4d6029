package model

import (
	"time"

	"github.com/google/uuid"

	institutionModel "sigi_backend/internals/features/institutions/institution/model"
)

// RankModel carries RankOrder for hierarchy display (lower comes first).
type RankModel struct {
	RankID            uuid.UUID `gorm:"column:rank_id;type:uuid;default:gen_random_uuid();primaryKey" json:"rank_id"`
	RankInstitutionID uuid.UUID `gorm:"column:rank_institution_id;type:uuid;not null;uniqueIndex:uq_ranks_institution_name;index" json:"rank_institution_id"`
	RankName          string    `gorm:"column:rank_name;type:varchar(100);not null;uniqueIndex:uq_ranks_institution_name" json:"rank_name"`
	RankOrder         int       `gorm:"column:rank_order;not null;default:0" json:"rank_order"`

	Institution institutionModel.InstitutionModel `gorm:"foreignKey:RankInstitutionID;references:InstitutionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"institution,omitempty"`

	RankCreatedAt time.Time `gorm:"column:rank_created_at;autoCreateTime" json:"rank_created_at"`
	RankUpdatedAt time.Time `gorm:"column:rank_updated_at;autoUpdateTime" json:"rank_updated_at"`
}

func (RankModel) TableName() string {
	return "ranks"
}
