package model

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Recruiter extends a User with company membership. A company has at most
// one active recruiter at a time.
type Recruiter struct {
	UserID    uint            `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	CompanyID uint            `json:"company_id" gorm:"not null;index"`
	IsActive  bool            `json:"is_active" gorm:"not null"`
	StartDate datatypes.Date  `json:"start_date" gorm:"not null"`
	EndDate   *datatypes.Date `json:"end_date"`
	User      *User           `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Company   *Company        `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// Deactivate clears the active flag and closes the tenure on end.
func (r *Recruiter) Deactivate(end time.Time) {
	d := NewDate(end)
	r.IsActive = false
	r.EndDate = &d
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return NewDate(t), nil
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// FormatDatePtr renders d or returns nil.
func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}
