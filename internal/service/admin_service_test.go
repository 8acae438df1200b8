package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/storage"
)

func TestAdminService_Stats(t *testing.T) {
	e := newTestEnv(t)
	admins := NewAdminService(e.repos, e.resolver, zap.NewNop())
	admin := e.caller(e.register(adminInput("root@mail.test", "123-45-6789")).ID)

	t.Run("empty platform is zero filled", func(t *testing.T) {
		stats, err := admins.Stats(e.ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalUsers)
		assert.Equal(t, map[model.Role]int64{model.RoleAdmin: 1, model.RoleApplicant: 0, model.RoleRecruiter: 0}, stats.UsersByRole)
		assert.Len(t, stats.ApplicationsByStatus, 3)
		assert.Zero(t, stats.TotalApplications)
	})

	jobs := NewJobService(e.repos, nil, time.Minute, zap.NewNop())
	apps := NewApplicationService(e.repos, zap.NewNop())
	recruiter := e.caller(e.register(foundCompanyInput("alice@acme.test", "Acme", "k", "2024-01-01")).ID)
	ada := e.caller(e.register(applicantInput("ada@mail.test")).ID)
	eve := e.caller(e.register(applicantInput("eve@mail.test")).ID)

	job, err := jobs.Create(e.ctx, recruiter, JobInput{Title: "Go Developer", Salary: "1"})
	require.NoError(t, err)
	first, err := apps.Apply(e.ctx, ada, job.ID)
	require.NoError(t, err)
	_, err = apps.Apply(e.ctx, eve, job.ID)
	require.NoError(t, err)
	_, err = apps.Review(e.ctx, recruiter, first.ID, ApplicationReview{Status: strPtr("REJECTED")})
	require.NoError(t, err)

	stats, err := admins.Stats(e.ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.UsersByRole[model.RoleApplicant])
	assert.Equal(t, int64(1), stats.Companies)
	assert.Equal(t, int64(1), stats.Jobs)
	assert.Equal(t, int64(2), stats.TotalApplications)
	assert.Equal(t, int64(1), stats.ApplicationsByStatus[model.ApplicationPending])
	assert.Equal(t, int64(1), stats.ApplicationsByStatus[model.ApplicationRejected])
	assert.Equal(t, int64(0), stats.ApplicationsByStatus[model.ApplicationApproved])

	_, err = admins.Stats(e.ctx, recruiter)
	assert.ErrorIs(t, err, auth.ErrPermissionDenied)
}

func TestAdminService_ListUsers(t *testing.T) {
	e := newTestEnv(t)
	admins := NewAdminService(e.repos, e.resolver, zap.NewNop())
	admin := e.caller(e.register(adminInput("root@mail.test", "123-45-6789")).ID)
	var last *model.User
	for _, email := range []string{"a@mail.test", "b@mail.test", "c@mail.test"} {
		last = e.register(applicantInput(email))
	}

	page, err := admins.ListUsers(e.ctx, admin, repository.UserFilter{Page: repository.Page{Number: 1, Size: 500}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, 10, page.Page.Size)
	assert.Len(t, page.Users, 4)

	_, err = admins.ListUsers(e.ctx, e.caller(last.ID), repository.UserFilter{})
	assert.ErrorIs(t, err, auth.ErrPermissionDenied)
}

func TestAdminService_BrokenFiles(t *testing.T) {
	e := newTestEnv(t)
	admins := NewAdminService(e.repos, e.resolver, zap.NewNop())
	admin := e.caller(e.register(adminInput("root@mail.test", "123-45-6789")).ID)

	in := applicantInput("ada@mail.test")
	in.Resume = upload("cv.pdf", "pdf")
	ada := e.register(in)

	eve := e.caller(e.register(applicantInput("eve@mail.test")).ID)
	eve.ProfilePhoto = "profilephotos/gone.png"
	require.NoError(t, e.repos.Users.Update(e.ctx, eve))

	bob := e.caller(e.register(applicantInput("bob@mail.test")).ID)
	bob.ProfilePhoto = "https://cdn.example.com/bob.png"
	require.NoError(t, e.repos.Users.Update(e.ctx, bob))

	broken, err := admins.BrokenFiles(e.ctx, admin)
	require.NoError(t, err)
	require.Len(t, broken, 1)
	assert.Equal(t, BrokenFile{Kind: storage.KindProfilePhoto, OwnerID: eve.ID, Path: "profilephotos/gone.png"}, broken[0])

	_, err = admins.BrokenFiles(e.ctx, e.caller(ada.ID))
	assert.ErrorIs(t, err, auth.ErrPermissionDenied)
}
