package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles understood by the authorization layer.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `json:"role"`
	Building     string `json:"building,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = RoleViewer
	}
	u.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
