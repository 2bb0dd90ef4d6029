package model

import (
	"time"

	"github.com/google/uuid"
)

type StateModel struct {
	StateID   uuid.UUID `gorm:"column:state_id;type:uuid;default:gen_random_uuid();primaryKey" json:"state_id"`
	StateName string    `gorm:"column:state_name;type:varchar(50);uniqueIndex:uq_states_name;not null" json:"state_name"`
	StateUF   string    `gorm:"column:state_uf;type:char(2);uniqueIndex:uq_states_uf;not null" json:"state_uf"`

	StateCreatedAt time.Time `gorm:"column:state_created_at;autoCreateTime" json:"state_created_at"`
	StateUpdatedAt time.Time `gorm:"column:state_updated_at;autoUpdateTime" json:"state_updated_at"`
}

func (StateModel) TableName() string {
	return "states"
}
