package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "jobmatrix/internal/errors"
)

// Job is a posting owned by one recruiter. The company is reached through
// the recruiter.
type Job struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:100;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Location    string          `json:"location" gorm:"size:100"`
	Salary      decimal.Decimal `json:"salary" gorm:"type:decimal(10,2);not null;check:chk_jobs_salary,salary >= 0"`
	PostedAt    time.Time       `json:"posted_at" gorm:"autoCreateTime;<-:create;index"`
	UpdatedAt   time.Time       `json:"updated_at"`
	RecruiterID uint            `json:"recruiter_id" gorm:"not null;index"`
	Recruiter   *Recruiter      `json:"recruiter,omitempty" gorm:"foreignKey:RecruiterID;references:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeSave rejects negative salaries.
func (j *Job) BeforeSave(tx *gorm.DB) error {
	if j.Salary.IsNegative() {
		return apperrors.NewValidation("salary", "must be non-negative")
	}
	return nil
}

// ApplicationStats counts applications per status for one job.
type ApplicationStats struct {
	Total    int64 `json:"total_applications"`
	Approved int64 `json:"approved_applications"`
	Rejected int64 `json:"rejected_applications"`
	Pending  int64 `json:"pending_applications"`
}
