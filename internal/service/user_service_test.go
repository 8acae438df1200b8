package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
)

func TestUserService_GetProfile(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.repos, e.files, nil, zap.NewNop())

	ada := e.caller(e.register(applicantInput("ada@mail.test")).ID)
	eve := e.caller(e.register(applicantInput("eve@mail.test")).ID)
	admin := e.caller(e.register(adminInput("root@mail.test", "123-45-6789")).ID)
	recruiter := e.caller(e.register(foundCompanyInput("alice@acme.test", "Acme", "k", "2024-01-01")).ID)

	profiles := NewProfileService(e.repos)
	_, err := profiles.AddSkill(e.ctx, ada, SkillInput{Name: "Go", YearsOfExperience: 3})
	require.NoError(t, err)

	tests := []struct {
		name    string
		caller  *model.User
		target  uint
		wantErr error
	}{
		{name: "self", caller: ada, target: ada.ID},
		{name: "admin", caller: admin, target: ada.ID},
		{name: "recruiter", caller: recruiter, target: ada.ID},
		{name: "other applicant", caller: eve, target: ada.ID, wantErr: auth.ErrPermissionDenied},
		{name: "anonymous", caller: nil, target: ada.ID, wantErr: auth.ErrPermissionDenied},
		{name: "missing user", caller: admin, target: 9999, wantErr: apperrors.ErrUserNotFound},
		{name: "applicant asking for a missing id", caller: eve, target: 9999, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := users.GetProfile(e.ctx, tt.caller, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p.Applicant)
			require.Len(t, p.Applicant.Skills, 1)
			assert.Equal(t, "Go", p.Applicant.Skills[0].Name)
			assert.Nil(t, p.Recruiter)
		})
	}

	t.Run("by email", func(t *testing.T) {
		p, err := users.GetProfileByEmail(e.ctx, admin, "ALICE@acme.test")
		require.NoError(t, err)
		require.NotNil(t, p.Recruiter)
		assert.True(t, p.Recruiter.IsActive)

		self, err := users.GetProfileByEmail(e.ctx, admin, "")
		require.NoError(t, err)
		require.NotNil(t, self.Admin)
		assert.Equal(t, "123-45-6789", self.Admin.SSN)

		own, err := users.GetProfileByEmail(e.ctx, ada, "ADA@mail.test")
		require.NoError(t, err)
		assert.Equal(t, ada.ID, own.User.ID)

		_, err = users.GetProfileByEmail(e.ctx, eve, "ada@mail.test")
		assert.ErrorIs(t, err, auth.ErrPermissionDenied)
		_, err = users.GetProfileByEmail(e.ctx, eve, "nobody@mail.test")
		assert.ErrorIs(t, err, auth.ErrPermissionDenied)
		_, err = users.GetProfileByEmail(e.ctx, admin, "nobody@mail.test")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_Update(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.repos, e.files, nil, zap.NewNop())

	ada := e.caller(e.register(applicantInput("ada@mail.test")).ID)
	eve := e.caller(e.register(applicantInput("eve@mail.test")).ID)

	tests := []struct {
		name    string
		caller  *model.User
		in      UserUpdate
		wantErr error
	}{
		{name: "someone else", caller: eve, in: UserUpdate{City: strPtr("Paris")}, wantErr: auth.ErrPermissionDenied},
		{name: "email taken", caller: ada, in: UserUpdate{Email: strPtr("EVE@mail.test")}, wantErr: apperrors.ErrEmailTaken},
		{name: "blank email", caller: ada, in: UserUpdate{Email: strPtr(" ")}, wantErr: apperrors.ErrValidation},
		{name: "blank name", caller: ada, in: UserUpdate{FirstName: strPtr("")}, wantErr: apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.Update(e.ctx, tt.caller, ada.ID, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	updated, err := users.Update(e.ctx, ada, ada.ID, UserUpdate{
		Email:        strPtr(" Ada.L@Mail.test"),
		City:         strPtr("London"),
		ProfilePhoto: upload("me.png", "png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ada.l@mail.test", updated.Email)
	assert.Equal(t, "London", updated.City)
	assert.Equal(t, "Ada", updated.FirstName)

	exists, err := e.files.Exists(e.ctx, updated.ProfilePhoto)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = e.auth.Login(e.ctx, "ada.l@mail.test", testPassword)
	assert.NoError(t, err)
}

func TestUserService_Delete(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.repos, e.files, nil, zap.NewNop())

	ada := e.caller(e.register(applicantInput("ada@mail.test")).ID)
	eve := e.caller(e.register(applicantInput("eve@mail.test")).ID)
	admin := e.caller(e.register(adminInput("root@mail.test", "123-45-6789")).ID)

	assert.ErrorIs(t, users.Delete(e.ctx, eve, ada.ID), auth.ErrPermissionDenied)
	require.NoError(t, users.Delete(e.ctx, admin, ada.ID))
	assert.ErrorIs(t, users.Delete(e.ctx, admin, ada.ID), apperrors.ErrUserNotFound)
	require.NoError(t, users.Delete(e.ctx, eve, eve.ID))

	assert.Equal(t, int64(1), e.userCount())
}

func TestUserService_UpdateResume(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.repos, e.files, nil, zap.NewNop())

	ada := e.caller(e.register(applicantInput("ada@mail.test")).ID)
	recruiter := e.caller(e.register(foundCompanyInput("alice@acme.test", "Acme", "k", "2024-01-01")).ID)

	_, err := users.UpdateResume(e.ctx, recruiter, upload("cv.pdf", "pdf"))
	assert.ErrorIs(t, err, auth.ErrPermissionDenied)
	_, err = users.UpdateResume(e.ctx, ada, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	applicant, err := users.UpdateResume(e.ctx, ada, upload("cv.pdf", "%PDF-1.4"))
	require.NoError(t, err)
	assert.Contains(t, applicant.Resume, "cv.pdf")

	stored, err := e.repos.Users.FindApplicant(e.ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, applicant.Resume, stored.Resume)
}

func TestUserService_SearchApplicants(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.repos, e.files, nil, zap.NewNop())

	ada := e.register(applicantInput("ada@mail.test"))
	e.register(applicantInput("eve@mail.test"))
	recruiter := e.caller(e.register(foundCompanyInput("alice@acme.test", "Acme", "k", "2024-01-01")).ID)

	all, err := users.SearchApplicants(e.ctx, recruiter, repository.ApplicantFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := users.SearchApplicants(e.ctx, recruiter, repository.ApplicantFilter{Email: "ADA@"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ada.ID, found[0].UserID)

	_, err = users.SearchApplicants(e.ctx, e.caller(ada.ID), repository.ApplicantFilter{})
	assert.ErrorIs(t, err, auth.ErrPermissionDenied)
}

func TestUserService_DeactivateSelf(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.repos, e.files, nil, zap.NewNop())
	users.(*userService).now = func() time.Time { return time.Date(2025, 2, 10, 15, 0, 0, 0, time.UTC) }

	alice := e.register(foundCompanyInput("alice@acme.test", "Acme", "k", "2024-01-01"))

	recruiter, err := users.DeactivateSelf(e.ctx, e.caller(alice.ID))
	require.NoError(t, err)
	assert.False(t, recruiter.IsActive)
	require.NotNil(t, recruiter.EndDate)
	assert.Equal(t, "2025-02-10", model.FormatDate(*recruiter.EndDate))

	_, err = users.DeactivateSelf(e.ctx, e.caller(alice.ID))
	assert.ErrorIs(t, err, ErrRecruiterNotActive)

	_, err = e.auth.Login(e.ctx, "alice@acme.test", testPassword)
	assert.ErrorIs(t, err, apperrors.ErrRecruiterInactive)

	active, err := e.repos.Companies.FindActiveRecruiters(e.ctx, recruiter.CompanyID)
	require.NoError(t, err)
	assert.Empty(t, active)
}
