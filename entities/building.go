package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Building struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	Code      string `gorm:"uniqueIndex" json:"code"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity"`
	Manager   string `json:"manager"`
	CreatedAt string `json:"created_at"`
}

func (b *Building) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
