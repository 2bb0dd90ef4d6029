package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the identity record. Institutional data lives on the profile.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;uniqueIndex:uq_users_user_name;not null" json:"user_name"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	Email     string    `gorm:"size:255;uniqueIndex:uq_users_email;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`

	IsSuperuser bool `gorm:"not null;default:false" json:"is_superuser"`
	IsActive    bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
