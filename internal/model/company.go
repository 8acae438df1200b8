package model

import (
	"time"

	"gorm.io/gorm"

	"jobmatrix/internal/storage"
)

// Company groups recruiters. New recruiters join by presenting the secret key.
type Company struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Industry      string    `json:"industry" gorm:"size:100"`
	Description   string    `json:"description" gorm:"type:text"`
	Image         string    `json:"image,omitempty" gorm:"size:255"`
	SecretKeyHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"<-:create"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeSave keeps the image column a logical key.
func (c *Company) BeforeSave(tx *gorm.DB) error {
	c.Image = storage.NormalizeKey(storage.KindCompanyImage, c.Image)
	return nil
}
