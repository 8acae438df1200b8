package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
)

func TestApplicationService_Lifecycle(t *testing.T) {
	f := newJobFixture(t)
	apps := NewApplicationService(f.repos, zap.NewNop())

	job, err := f.jobs.Create(f.ctx, f.acmeNew, JobInput{Title: "Go Developer", Salary: "80000"})
	require.NoError(t, err)

	_, err = apps.Apply(f.ctx, f.acmeNew, job.ID)
	assert.ErrorIs(t, err, auth.ErrPermissionDenied, "recruiters cannot apply")
	_, err = apps.Apply(f.ctx, f.applicant, 9999)
	assert.ErrorIs(t, err, ErrJobNotFound)

	application, err := apps.Apply(f.ctx, f.applicant, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationPending, application.Status)

	_, err = apps.Apply(f.ctx, f.applicant, job.ID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	mine, err := apps.ListMine(f.ctx, f.applicant)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, job.ID, mine[0].JobID)

	t.Run("list for job", func(t *testing.T) {
		list, err := apps.ListForJob(f.ctx, f.acmeNew, job.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = apps.ListForJob(f.ctx, f.globex, job.ID)
		assert.ErrorIs(t, err, auth.ErrPermissionDenied)
		_, err = apps.ListForJob(f.ctx, f.acmeOld, job.ID)
		assert.ErrorIs(t, err, ErrRecruiterNotActive)
	})

	t.Run("review", func(t *testing.T) {
		tests := []struct {
			name    string
			caller  *model.User
			in      ApplicationReview
			wantErr error
		}{
			{name: "other company", caller: f.globex, in: ApplicationReview{Status: strPtr("APPROVED")}, wantErr: auth.ErrPermissionDenied},
			{name: "former recruiter", caller: f.acmeOld, in: ApplicationReview{Status: strPtr("APPROVED")}, wantErr: ErrRecruiterNotActive},
			{name: "applicant", caller: f.applicant, in: ApplicationReview{Status: strPtr("APPROVED")}, wantErr: auth.ErrPermissionDenied},
			{name: "unknown status", caller: f.acmeNew, in: ApplicationReview{Status: strPtr("MAYBE")}, wantErr: apperrors.ErrValidation},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := apps.Review(f.ctx, tt.caller, application.ID, tt.in)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}

		reviewed, err := apps.Review(f.ctx, f.acmeNew, application.ID, ApplicationReview{
			Status:  strPtr("approved"),
			Comment: strPtr("See you Monday"),
		})
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationApproved, reviewed.Status)
		assert.Equal(t, "See you Monday", reviewed.RecruiterComment)
	})

	t.Run("withdraw", func(t *testing.T) {
		assert.ErrorIs(t, apps.Withdraw(f.ctx, f.applicant, application.ID), ErrApplicationNotPending)

		other := f.caller(f.register(applicantInput("eve@mail.test")).ID)
		pending, err := apps.Apply(f.ctx, other, job.ID)
		require.NoError(t, err)

		assert.ErrorIs(t, apps.Withdraw(f.ctx, f.applicant, pending.ID), ErrApplicationNotFound)
		assert.ErrorIs(t, apps.Withdraw(f.ctx, f.acmeNew, pending.ID), auth.ErrPermissionDenied)
		require.NoError(t, apps.Withdraw(f.ctx, other, pending.ID))
		assert.ErrorIs(t, apps.Withdraw(f.ctx, other, pending.ID), ErrApplicationNotFound)
	})
}

func TestBookmarkService(t *testing.T) {
	f := newJobFixture(t)
	bookmarks := NewBookmarkService(f.repos)

	job, err := f.jobs.Create(f.ctx, f.acmeNew, JobInput{Title: "Go Developer", Salary: "80000"})
	require.NoError(t, err)

	_, err = bookmarks.Add(f.ctx, f.globex, job.ID)
	assert.ErrorIs(t, err, auth.ErrPermissionDenied)
	_, err = bookmarks.Add(f.ctx, f.applicant, 9999)
	assert.ErrorIs(t, err, ErrJobNotFound)

	saved, err := bookmarks.Add(f.ctx, f.applicant, job.ID)
	require.NoError(t, err)
	_, err = bookmarks.Add(f.ctx, f.applicant, job.ID)
	assert.ErrorIs(t, err, ErrAlreadyBookmarked)

	list, err := bookmarks.List(f.ctx, f.applicant)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Job)
	assert.Equal(t, "Go Developer", list[0].Job.Title)

	other := f.caller(f.register(applicantInput("eve@mail.test")).ID)
	assert.ErrorIs(t, bookmarks.Remove(f.ctx, other, saved.ID), ErrBookmarkNotFound)
	require.NoError(t, bookmarks.Remove(f.ctx, f.applicant, saved.ID))
	assert.ErrorIs(t, bookmarks.Remove(f.ctx, f.applicant, saved.ID), ErrBookmarkNotFound)

	t.Run("deleting the job drops its bookmarks", func(t *testing.T) {
		_, err := bookmarks.Add(f.ctx, f.applicant, job.ID)
		require.NoError(t, err)
		require.NoError(t, f.jobs.Delete(f.ctx, f.acmeNew, job.ID))

		list, err := bookmarks.List(f.ctx, f.applicant)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
