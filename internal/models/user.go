package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name              string         `json:"name"`
	Email             string         `gorm:"unique;not null" json:"email"`
	PasswordHash      string         `gorm:"not null" json:"-"`
	Avatar            string         `json:"avatar,omitempty"`
	DOB               string         `json:"dob,omitempty"`
	Location          string         `json:"location,omitempty"`
	Bio               string         `json:"bio,omitempty"`
	Role              string         `gorm:"default:User" json:"role"`
	Status            string         `gorm:"default:Active" json:"status"`
	IsProfileComplete bool           `json:"is_profile_complete"`
	LastLogin         *time.Time     `json:"lastLogin,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
