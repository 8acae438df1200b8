package model

import "time"

// ApplicationStatus represents the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// Application links an applicant to a job.
type Application struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	ApplicantID      uint              `json:"applicant_id" gorm:"not null;uniqueIndex:idx_applications_applicant_job"`
	JobID            uint              `json:"job_id" gorm:"not null;index;uniqueIndex:idx_applications_applicant_job"`
	Status           ApplicationStatus `json:"status" gorm:"size:10;not null;default:'PENDING';index"`
	RecruiterComment string            `json:"recruiter_comment,omitempty" gorm:"type:text"`
	CreatedAt        time.Time         `json:"created_at" gorm:"<-:create"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Applicant        *Applicant        `json:"-" gorm:"foreignKey:ApplicantID;references:UserID;constraint:OnDelete:CASCADE"`
	Job              *Job              `json:"-" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// Bookmark links an applicant to a saved job.
type Bookmark struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ApplicantID uint       `json:"applicant_id" gorm:"not null;uniqueIndex:idx_bookmarks_applicant_job"`
	JobID       uint       `json:"job_id" gorm:"not null;index;uniqueIndex:idx_bookmarks_applicant_job"`
	CreatedAt   time.Time  `json:"created_at" gorm:"<-:create"`
	Applicant   *Applicant `json:"-" gorm:"foreignKey:ApplicantID;references:UserID;constraint:OnDelete:CASCADE"`
	Job         *Job       `json:"-" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}
