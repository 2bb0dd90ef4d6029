package model

import (
	"time"

	"github.com/google/uuid"
)

type MunicipalityModel struct {
	MunicipalityID      uuid.UUID `gorm:"column:municipality_id;type:uuid;default:gen_random_uuid();primaryKey" json:"municipality_id"`
	MunicipalityStateID uuid.UUID `gorm:"column:municipality_state_id;type:uuid;not null;uniqueIndex:uq_municipalities_state_name;index" json:"municipality_state_id"`
	MunicipalityName    string    `gorm:"column:municipality_name;type:varchar(150);not null;uniqueIndex:uq_municipalities_state_name" json:"municipality_name"`

	State StateModel `gorm:"foreignKey:MunicipalityStateID;references:StateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"state,omitempty"`

	MunicipalityCreatedAt time.Time `gorm:"column:municipality_created_at;autoCreateTime" json:"municipality_created_at"`
	MunicipalityUpdatedAt time.Time `gorm:"column:municipality_updated_at;autoUpdateTime" json:"municipality_updated_at"`
}

func (MunicipalityModel) TableName() string {
	return "municipalities"
}
