package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "jobmatrix/internal/errors"
)

// WorkExperience is one entry in an applicant's employment history.
type WorkExperience struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	ApplicantID      uint            `json:"applicant_id" gorm:"not null;index"`
	JobTitle         string          `json:"job_title" gorm:"size:100;not null"`
	CompanyName      string          `json:"company_name" gorm:"size:100;not null"`
	StartDate        datatypes.Date  `json:"start_date" gorm:"not null"`
	EndDate          *datatypes.Date `json:"end_date"`
	CurrentlyWorking bool            `json:"currently_working" gorm:"not null"`
	Description      string          `json:"description" gorm:"type:text"`
	Applicant        *Applicant      `json:"-" gorm:"foreignKey:ApplicantID;references:UserID;constraint:OnDelete:CASCADE"`
}

// Validate enforces the end date / current flag rule.
func (w *WorkExperience) Validate() error {
	return checkPeriod("currently_working", w.CurrentlyWorking, w.StartDate, w.EndDate)
}

// BeforeSave runs Validate.
func (w *WorkExperience) BeforeSave(tx *gorm.DB) error {
	return w.Validate()
}

// Education is one entry in an applicant's education history.
type Education struct {
	ID                uint                `json:"id" gorm:"primaryKey"`
	ApplicantID       uint                `json:"applicant_id" gorm:"not null;index"`
	Institution       string              `json:"institution" gorm:"size:100;not null"`
	Degree            string              `json:"degree" gorm:"size:100;not null"`
	FieldOfStudy      string              `json:"field_of_study" gorm:"size:100"`
	StartDate         datatypes.Date      `json:"start_date" gorm:"not null"`
	EndDate           *datatypes.Date     `json:"end_date"`
	CurrentlyEnrolled bool                `json:"currently_enrolled" gorm:"not null"`
	GPA               decimal.NullDecimal `json:"gpa" gorm:"type:decimal(3,2)"`
	Applicant         *Applicant          `json:"-" gorm:"foreignKey:ApplicantID;references:UserID;constraint:OnDelete:CASCADE"`
}

// Validate enforces the enrollment rule and a non-negative GPA.
func (e *Education) Validate() error {
	if e.GPA.Valid && e.GPA.Decimal.IsNegative() {
		return apperrors.NewValidation("gpa", "must be non-negative")
	}
	return checkPeriod("currently_enrolled", e.CurrentlyEnrolled, e.StartDate, e.EndDate)
}

// BeforeSave runs Validate.
func (e *Education) BeforeSave(tx *gorm.DB) error {
	return e.Validate()
}

// Skill is a named skill with years of experience.
type Skill struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	ApplicantID       uint       `json:"applicant_id" gorm:"not null;index"`
	Name              string     `json:"name" gorm:"size:50;not null"`
	YearsOfExperience int        `json:"years_of_experience" gorm:"not null;check:chk_skills_years,years_of_experience >= 0"`
	Applicant         *Applicant `json:"-" gorm:"foreignKey:ApplicantID;references:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeSave rejects negative experience.
func (s *Skill) BeforeSave(tx *gorm.DB) error {
	if s.YearsOfExperience < 0 {
		return apperrors.NewValidation("years_of_experience", "must be non-negative")
	}
	return nil
}

// checkPeriod: current ⇔ no end date, otherwise end strictly after start.
func checkPeriod(flag string, current bool, start datatypes.Date, end *datatypes.Date) error {
	if current {
		if end != nil {
			return apperrors.NewValidation("end_date", "must be empty when "+flag+" is set")
		}
		return nil
	}
	if end == nil {
		return apperrors.NewValidation("end_date", "is required unless "+flag+" is set")
	}
	if !time.Time(*end).After(time.Time(start)) {
		return apperrors.NewValidation("end_date", "must be after start_date")
	}
	return nil
}
