package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/cache"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
)

func TestParseJobFilter(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	at := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name      string
		query     JobQuery
		wantAfter *time.Time
		wantMin   string
		wantPage  repository.Page
	}{
		{name: "empty", query: JobQuery{}, wantPage: repository.Page{Number: 1, Size: 9}},
		{name: "past 24 hours", query: JobQuery{DatePosted: "Past 24 hours"}, wantAfter: at(now.Add(-24 * time.Hour))},
		{name: "past 3 days", query: JobQuery{DatePosted: "past 3 days"}, wantAfter: at(now.AddDate(0, 0, -3))},
		{name: "past week", query: JobQuery{DatePosted: "Past Week"}, wantAfter: at(now.AddDate(0, 0, -7))},
		{name: "past month", query: JobQuery{DatePosted: "Past month"}, wantAfter: at(now.AddDate(0, 0, -30))},
		{name: "number of days", query: JobQuery{DatePosted: "10"}, wantAfter: at(now.AddDate(0, 0, -10))},
		{name: "calendar date", query: JobQuery{DatePosted: "2025-03-01"}, wantAfter: at(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))},
		{name: "unparseable date ignored", query: JobQuery{DatePosted: "last tuesday"}},
		{name: "min salary", query: JobQuery{MinSalary: "50000.50"}, wantMin: "50000.5"},
		{name: "bad min salary ignored", query: JobQuery{MinSalary: "lots"}},
		{name: "page and size", query: JobQuery{Page: "3", PageSize: "20"}, wantPage: repository.Page{Number: 3, Size: 20}},
		{name: "size clamped", query: JobQuery{Page: "-2", PageSize: "1000"}, wantPage: repository.Page{Number: 1, Size: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ParseJobFilter(tt.query, now)

			if tt.wantAfter == nil {
				assert.Nil(t, filter.PostedAfter)
			} else {
				require.NotNil(t, filter.PostedAfter)
				assert.True(t, tt.wantAfter.Equal(*filter.PostedAfter), "got %s", filter.PostedAfter)
			}
			if tt.wantMin == "" {
				assert.Nil(t, filter.MinSalary)
			} else {
				require.NotNil(t, filter.MinSalary)
				assert.Equal(t, tt.wantMin, filter.MinSalary.String())
			}
			if tt.wantPage != (repository.Page{}) {
				assert.Equal(t, tt.wantPage, filter.Page)
			}
		})
	}
}

func TestJobPage_TotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{total: 0, size: 9, want: 0},
		{total: 9, size: 9, want: 1},
		{total: 10, size: 9, want: 2},
		{total: 5, size: 0, want: 0},
	}
	for _, tt := range tests {
		p := &JobPage{Total: tt.total, Page: repository.Page{Number: 1, Size: tt.size}}
		assert.Equal(t, tt.want, p.TotalPages())
	}
}

type jobFixture struct {
	*testEnv
	jobs      JobService
	acmeOld   *model.User
	acmeNew   *model.User
	globex    *model.User
	applicant *model.User
	acmeID    uint
}

// newJobFixture builds Acme with a former and a current recruiter, and Globex
// with one recruiter.
func newJobFixture(t *testing.T) *jobFixture {
	e := newTestEnv(t)
	f := &jobFixture{testEnv: e, jobs: NewJobService(e.repos, nil, time.Minute, zap.NewNop())}

	old := e.register(foundCompanyInput("alice@acme.test", "Acme", "acme-key", "2024-01-01"))
	f.acmeID = e.caller(old.ID).Recruiter.CompanyID

	// alice posts while still active
	_, err := f.jobs.Create(e.ctx, e.caller(old.ID), JobInput{Title: "Legacy Role", Salary: "40000"})
	require.NoError(t, err)

	current := e.register(joinCompanyInput("bob@acme.test", f.acmeID, "acme-key", "2024-06-01"))
	g := e.register(foundCompanyInput("gina@globex.test", "Globex", "globex-key", "2024-01-01"))
	a := e.register(applicantInput("ada@mail.test"))

	f.acmeOld = e.caller(old.ID)
	f.acmeNew = e.caller(current.ID)
	f.globex = e.caller(g.ID)
	f.applicant = e.caller(a.ID)
	return f
}

func TestJobService_Create(t *testing.T) {
	f := newJobFixture(t)

	tests := []struct {
		name    string
		caller  *model.User
		in      JobInput
		wantErr error
	}{
		{name: "active recruiter", caller: f.acmeNew, in: JobInput{Title: " Go Developer ", Location: "Remote", Salary: "85000.456"}},
		{name: "inactive recruiter", caller: f.acmeOld, in: JobInput{Title: "X", Salary: "1"}, wantErr: ErrRecruiterNotActive},
		{name: "applicant", caller: f.applicant, in: JobInput{Title: "X", Salary: "1"}, wantErr: auth.ErrPermissionDenied},
		{name: "negative salary", caller: f.acmeNew, in: JobInput{Title: "X", Salary: "-5"}, wantErr: apperrors.ErrValidation},
		{name: "missing salary", caller: f.acmeNew, in: JobInput{Title: "X"}, wantErr: apperrors.ErrValidation},
		{name: "missing title", caller: f.acmeNew, in: JobInput{Salary: "1"}, wantErr: apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := f.jobs.Create(f.ctx, tt.caller, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Go Developer", job.Title)
			assert.True(t, decimal.RequireFromString("85000.46").Equal(job.Salary))
			assert.Equal(t, tt.caller.ID, job.RecruiterID)
		})
	}
}

func TestJobService_Ownership(t *testing.T) {
	f := newJobFixture(t)
	job, err := f.jobs.Create(f.ctx, f.acmeNew, JobInput{Title: "Go Developer", Salary: "80000"})
	require.NoError(t, err)

	_, err = f.jobs.Update(f.ctx, f.globex, job.ID, JobUpdate{Title: strPtr("Hijacked")})
	assert.ErrorIs(t, err, auth.ErrPermissionDenied)
	assert.ErrorIs(t, f.jobs.Delete(f.ctx, f.globex, job.ID), auth.ErrPermissionDenied)
	assert.ErrorIs(t, f.jobs.Delete(f.ctx, f.acmeOld, job.ID), ErrRecruiterNotActive)

	updated, err := f.jobs.Update(f.ctx, f.acmeNew, job.ID, JobUpdate{Salary: strPtr("90000"), Location: strPtr("Berlin")})
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", updated.Title)
	assert.Equal(t, "Berlin", updated.Location)
	assert.True(t, decimal.NewFromInt(90000).Equal(updated.Salary))

	_, err = f.jobs.Update(f.ctx, f.acmeNew, job.ID, JobUpdate{Title: strPtr("  ")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, f.jobs.Delete(f.ctx, f.acmeNew, job.ID))
	_, err = f.jobs.Get(f.ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.ErrorIs(t, f.jobs.Delete(f.ctx, f.acmeNew, job.ID), ErrJobNotFound)
}

func TestJobService_ListCompanyJobs(t *testing.T) {
	f := newJobFixture(t)
	_, err := f.jobs.Create(f.ctx, f.acmeNew, JobInput{Title: "Go Developer", Salary: "80000"})
	require.NoError(t, err)
	_, err = f.jobs.Create(f.ctx, f.globex, JobInput{Title: "Accountant", Salary: "60000"})
	require.NoError(t, err)

	page, err := f.jobs.ListCompanyJobs(f.ctx, f.acmeNew, ParseJobFilter(JobQuery{}, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "Acme", page.Company.Name)
	assert.Equal(t, int64(2), page.Total, "jobs of former recruiters stay with the company")
	for _, j := range page.Jobs {
		assert.Equal(t, f.acmeID, j.Recruiter.CompanyID)
		assert.Contains(t, page.Stats, j.ID)
	}

	_, err = f.jobs.ListCompanyJobs(f.ctx, f.acmeOld, ParseJobFilter(JobQuery{}, time.Now()))
	assert.ErrorIs(t, err, ErrRecruiterNotActive)

	all, err := f.jobs.Search(f.ctx, ParseJobFilter(JobQuery{MinSalary: "50000"}, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
	assert.Nil(t, all.Company)
}

func TestJobService_Get(t *testing.T) {
	f := newJobFixture(t)
	job, err := f.jobs.Create(f.ctx, f.acmeNew, JobInput{Title: "Go Developer", Salary: "80000"})
	require.NoError(t, err)

	got, err := f.jobs.Get(f.ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Recruiter)
	assert.Equal(t, "Bob", got.Recruiter.User.FirstName)
	assert.Equal(t, "Acme", got.Recruiter.Company.Name)

	_, err = f.jobs.Get(f.ctx, 9999)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobService_CachedDetailFollowsOwners(t *testing.T) {
	e := newTestEnv(t)
	store := newMemoryCache()
	jobs := NewJobService(e.repos, store, time.Minute, zap.NewNop())
	users := NewUserService(e.repos, e.files, store, zap.NewNop())
	companies := NewCompanyService(e.repos, e.files, store, time.Minute, zap.NewNop())

	alice := e.caller(e.register(foundCompanyInput("alice@acme.test", "Acme", "acme-key", "2024-01-01")).ID)
	job, err := jobs.Create(e.ctx, alice, JobInput{Title: "Go Developer", Salary: "1000"})
	require.NoError(t, err)

	warm := func(t *testing.T) *model.Job {
		t.Helper()
		got, err := jobs.Get(e.ctx, job.ID)
		require.NoError(t, err)
		require.True(t, store.has(cache.JobKey(job.ID)))
		return got
	}

	t.Run("company rename", func(t *testing.T) {
		assert.Equal(t, "Acme", warm(t).Recruiter.Company.Name)
		_, err := companies.Update(e.ctx, alice, CompanyUpdate{Name: strPtr("Acme Corp")})
		require.NoError(t, err)
		assert.False(t, store.has(cache.JobKey(job.ID)))

		got, err := jobs.Get(e.ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", got.Recruiter.Company.Name)
	})

	t.Run("recruiter rename", func(t *testing.T) {
		warm(t)
		_, err := users.Update(e.ctx, alice, alice.ID, UserUpdate{FirstName: strPtr("Alicia")})
		require.NoError(t, err)
		assert.False(t, store.has(cache.JobKey(job.ID)))

		got, err := jobs.Get(e.ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Recruiter.User.FirstName)
	})

	t.Run("recruiter deleted", func(t *testing.T) {
		warm(t)
		require.NoError(t, users.Delete(e.ctx, alice, alice.ID))
		assert.Contains(t, store.deleted, cache.JobKey(job.ID))

		_, err := jobs.Get(e.ctx, job.ID)
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}
