package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	apperrors "jobmatrix/internal/errors"
)

func date(s string) datatypes.Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *datatypes.Date {
	d := date(s)
	return &d
}

func TestWorkExperience_Validate(t *testing.T) {
	tests := []struct {
		name    string
		work    WorkExperience
		wantErr bool
	}{
		{name: "current without end", work: WorkExperience{StartDate: date("2020-01-01"), CurrentlyWorking: true}},
		{name: "current with end", work: WorkExperience{StartDate: date("2020-01-01"), EndDate: datePtr("2021-01-01"), CurrentlyWorking: true}, wantErr: true},
		{name: "past with end", work: WorkExperience{StartDate: date("2020-01-01"), EndDate: datePtr("2021-01-01")}},
		{name: "past without end", work: WorkExperience{StartDate: date("2020-01-01")}, wantErr: true},
		{name: "end equals start", work: WorkExperience{StartDate: date("2020-01-01"), EndDate: datePtr("2020-01-01")}, wantErr: true},
		{name: "end before start", work: WorkExperience{StartDate: date("2020-01-02"), EndDate: datePtr("2020-01-01")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.work.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEducation_Validate(t *testing.T) {
	negative := decimal.NewNullDecimal(decimal.RequireFromString("-0.5"))
	e := Education{StartDate: date("2018-09-01"), CurrentlyEnrolled: true, GPA: negative}
	assert.ErrorIs(t, e.Validate(), apperrors.ErrValidation)

	e.GPA = decimal.NewNullDecimal(decimal.RequireFromString("3.75"))
	assert.NoError(t, e.Validate())

	e.CurrentlyEnrolled = false
	assert.Error(t, e.Validate(), "finished education needs an end date")
}

func TestHooks_RejectNegatives(t *testing.T) {
	job := &Job{Salary: decimal.RequireFromString("-1")}
	assert.ErrorIs(t, job.BeforeSave(nil), apperrors.ErrValidation)

	job.Salary = decimal.Zero
	assert.NoError(t, job.BeforeSave(nil))

	skill := &Skill{YearsOfExperience: -1}
	assert.ErrorIs(t, skill.BeforeSave(nil), apperrors.ErrValidation)
}

func TestRecruiter_Deactivate(t *testing.T) {
	r := &Recruiter{IsActive: true, StartDate: date("2024-01-01")}
	r.Deactivate(time.Date(2024, 5, 31, 18, 45, 0, 0, time.UTC))

	assert.False(t, r.IsActive)
	require.NotNil(t, r.EndDate)
	assert.Equal(t, "2024-05-31", FormatDate(*r.EndDate))
	assert.Equal(t, "2024-05-31", *FormatDatePtr(r.EndDate))
	assert.Nil(t, FormatDatePtr(nil))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("31/05/2024")
	assert.Error(t, err)

	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), time.Time(d))
}

func TestUser_BeforeSave(t *testing.T) {
	u := &User{Email: "  Jane@Example.COM ", ProfilePhoto: "/media/profilephotos/jane.png"}
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, "profilephotos/jane.png", u.ProfilePhoto)
	assert.Equal(t, "", (&User{}).FullName())
}

func TestStatusAndRole(t *testing.T) {
	assert.True(t, RoleRecruiter.Valid())
	assert.False(t, Role("recruiter").Valid())
	assert.True(t, ApplicationApproved.Valid())
	assert.False(t, ApplicationStatus("WITHDRAWN").Valid())
}

func TestPasswordResetToken_IsExpired(t *testing.T) {
	now := time.Now()
	token := &PasswordResetToken{ExpiresAt: now}
	assert.False(t, token.IsExpired(now))
	assert.True(t, token.IsExpired(now.Add(time.Nanosecond)))
}
