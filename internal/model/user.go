package model

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"jobmatrix/internal/storage"
)

// Role tags the kind of account a User is. It is fixed at creation.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleApplicant Role = "APPLICANT"
	RoleRecruiter Role = "RECRUITER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleApplicant, RoleRecruiter:
		return true
	}
	return false
}

// User is the account supertype shared by every role.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:50;not null"`
	LastName     string    `json:"last_name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:254;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Phone        string    `json:"phone,omitempty" gorm:"size:15"`
	StreetNo     string    `json:"street_no,omitempty" gorm:"size:255"`
	City         string    `json:"city,omitempty" gorm:"size:50"`
	State        string    `json:"state,omitempty" gorm:"size:50"`
	ZipCode      string    `json:"zip_code,omitempty" gorm:"size:10"`
	Role         Role      `json:"role" gorm:"size:20;not null;index"`
	ProfilePhoto string    `json:"profile_photo,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Recruiter is populated for recruiters when loaded for authorization.
	Recruiter *Recruiter `json:"-" gorm:"-:all"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// BeforeSave keeps the photo column a logical key.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.ProfilePhoto = storage.NormalizeKey(storage.KindProfilePhoto, u.ProfilePhoto)
	return nil
}

// Admin extends a User with administrator data.
type Admin struct {
	UserID uint   `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	SSN    string `json:"ssn" gorm:"uniqueIndex;size:11;not null"`
	User   *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Applicant extends a User with job seeker data.
type Applicant struct {
	UserID uint   `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	Resume string `json:"resume,omitempty" gorm:"size:255"`
	User   *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeSave keeps the resume column a logical key.
func (a *Applicant) BeforeSave(tx *gorm.DB) error {
	a.Resume = storage.NormalizeKey(storage.KindResume, a.Resume)
	return nil
}
