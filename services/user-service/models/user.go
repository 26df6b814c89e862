package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"userId"`
	FirstName    string         `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string         `gorm:"type:varchar(100)" json:"lastName"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        *string        `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Username     string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         string         `gorm:"type:varchar(30);not null;default:ROLE_USER" json:"role"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Credential is the shape the gateway consumes to authenticate a login.
// The password hash is only ever exposed on this internal endpoint.
type Credential struct {
	UserID       uuid.UUID `json:"userId"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	Enabled      bool      `json:"enabled"`
}

func (u *User) Credential() Credential {
	return Credential{
		UserID:       u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Enabled:      true,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
