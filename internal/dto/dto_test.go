package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/service"
	"jobmatrix/internal/storage"
)

func newMapper(t *testing.T) *Mapper {
	t.Helper()
	files, err := storage.NewLocal(afero.NewMemMapFs(), "/media", "http://localhost:8080", "/media")
	require.NoError(t, err)
	return NewMapper(storage.NewResolver(files, "https://placeholder.test/150"))
}

func TestMapper_JobPageNavigation(t *testing.T) {
	m := newMapper(t)

	tests := []struct {
		name     string
		total    int64
		page     int
		wantNext *int
		wantPrev *int
	}{
		{name: "empty", total: 0, page: 1},
		{name: "single page", total: 9, page: 1},
		{name: "first of three", total: 20, page: 1, wantNext: intPtr(2)},
		{name: "middle", total: 20, page: 2, wantNext: intPtr(3), wantPrev: intPtr(1)},
		{name: "last", total: 20, page: 3, wantPrev: intPtr(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := m.JobPage(&service.JobPage{Total: tt.total, Page: repository.Page{Number: tt.page, Size: 9}})
			assert.Equal(t, tt.wantNext, resp.Next)
			assert.Equal(t, tt.wantPrev, resp.Previous)
			assert.Equal(t, tt.page, resp.CurrentPage)
			assert.Nil(t, resp.CompanyID)
		})
	}
}

func TestMapper_JobFallbacks(t *testing.T) {
	m := newMapper(t)

	orphan := m.Job(&model.Job{ID: 1, Title: "Go Developer", Salary: decimal.NewFromInt(10)}, nil)
	assert.Equal(t, "Unknown Company", orphan.Company.Name)
	assert.Equal(t, "Unknown recruiter", orphan.RecruiterName)
	assert.Nil(t, orphan.Stats)

	job := m.Job(&model.Job{
		ID:    2,
		Title: "Go Developer",
		Recruiter: &model.Recruiter{
			User:    &model.User{FirstName: "Bob", LastName: "Joiner"},
			Company: &model.Company{ID: 7, Name: "Acme", Image: "companyimages/logo.png"},
		},
	}, &model.ApplicationStats{Total: 3, Pending: 3})
	assert.Equal(t, "Bob Joiner", job.RecruiterName)
	assert.Equal(t, CompanySummary{ID: 7, Name: "Acme", Image: "http://localhost:8080/media/companyimages/logo.png"}, job.Company)
	require.NotNil(t, job.Stats)
	assert.Equal(t, int64(3), job.Stats.Pending)
}

func TestMapper_Application(t *testing.T) {
	m := newMapper(t)

	resp := m.Application(&model.Application{
		ID:     5,
		Status: model.ApplicationPending,
		Job:    &model.Job{Title: "Go Developer"},
		Applicant: &model.Applicant{
			Resume: "https://jobs.example.com/cv.pdf",
			User:   &model.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@mail.test"},
		},
	})
	require.NotNil(t, resp.Company)
	assert.Equal(t, "Unknown Company", resp.Company.Name)
	assert.Equal(t, "Go Developer", resp.JobTitle)
	assert.Equal(t, "https://jobs.example.com/cv.pdf", resp.Resume)
	assert.Equal(t, "Ada Lovelace", resp.ApplicantName)
}

func TestMapper_CompanyDetail(t *testing.T) {
	m := newMapper(t)
	end := model.NewDate(mustDate(t, "2024-05-31"))

	resp := m.CompanyDetail(&service.CompanyDetail{
		Company: &model.Company{ID: 1, Name: "Acme"},
		Recruiters: []service.RecruiterSummary{
			{Recruiter: model.Recruiter{UserID: 2, IsActive: true, StartDate: model.NewDate(mustDate(t, "2024-06-01")), User: &model.User{FirstName: "Bob", Email: "bob@acme.test"}}, JobsPosted: 1},
			{Recruiter: model.Recruiter{UserID: 1, StartDate: model.NewDate(mustDate(t, "2024-01-01")), EndDate: &end}, JobsPosted: 4},
		},
		TotalRecruiters:  2,
		ActiveRecruiters: 1,
		TotalJobs:        5,
	}, 1)

	require.Len(t, resp.Recruiters, 2)
	assert.False(t, resp.Recruiters[0].IsCurrentUser)
	assert.Equal(t, "Bob", resp.Recruiters[0].Name)
	assert.Nil(t, resp.Recruiters[0].EndDate)

	assert.True(t, resp.Recruiters[1].IsCurrentUser)
	assert.Equal(t, "Unknown recruiter", resp.Recruiters[1].Name)
	require.NotNil(t, resp.Recruiters[1].EndDate)
	assert.Equal(t, "2024-05-31", *resp.Recruiters[1].EndDate)
	assert.Equal(t, CompanyStats{TotalRecruiters: 2, ActiveRecruiters: 1, TotalJobs: 5}, resp.Stats)
}

func intPtr(i int) *int { return &i }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return time.Time(d)
}
