package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/cache"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
)

const (
	defaultJobPageSize = 9
	maxJobPageSize     = 100
)

// JobQuery holds the raw listing query parameters.
type JobQuery struct {
	Title      string
	Location   string
	MinSalary  string
	DatePosted string
	Page       string
	PageSize   string
}

// JobPage is one page of jobs with per-job application stats.
type JobPage struct {
	Company *model.Company
	Jobs    []model.Job
	Stats   map[uint]model.ApplicationStats
	Total   int64
	Page    repository.Page
}

// TotalPages is the number of pages needed for Total rows.
func (p *JobPage) TotalPages() int {
	if p.Page.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Page.Size) - 1) / int64(p.Page.Size))
}

// JobInput creates a job. Salary is a decimal string.
type JobInput struct {
	Title       string
	Description string
	Location    string
	Salary      string
}

// JobUpdate is a partial job update.
type JobUpdate struct {
	Title       *string
	Description *string
	Location    *string
	Salary      *string
}

// JobService manages job postings and listings.
type JobService interface {
	Search(ctx context.Context, filter repository.JobFilter) (*JobPage, error)
	Get(ctx context.Context, id uint) (*model.Job, error)
	ListCompanyJobs(ctx context.Context, caller *model.User, filter repository.JobFilter) (*JobPage, error)
	Create(ctx context.Context, caller *model.User, in JobInput) (*model.Job, error)
	Update(ctx context.Context, caller *model.User, id uint, in JobUpdate) (*model.Job, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type jobService struct {
	repos    *repository.Repositories
	cache    cache.Store
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewJobService builds a JobService.
func NewJobService(repos *repository.Repositories, cacheClient cache.Store, cacheTTL time.Duration, log *zap.Logger) JobService {
	return &jobService{repos: repos, cache: cacheOrNone(cacheClient), cacheTTL: cacheTTL, log: log}
}

// ParseJobFilter turns query parameters into a filter. Values that do not
// parse are dropped rather than rejected.
func ParseJobFilter(q JobQuery, now time.Time) repository.JobFilter {
	filter := repository.JobFilter{
		Title:    strings.TrimSpace(q.Title),
		Location: strings.TrimSpace(q.Location),
	}

	if s := strings.TrimSpace(q.MinSalary); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			filter.MinSalary = &d
		}
	}
	if t, ok := postedAfter(strings.TrimSpace(q.DatePosted), now); ok {
		filter.PostedAfter = &t
	}

	page, _ := strconv.Atoi(strings.TrimSpace(q.Page))
	size, _ := strconv.Atoi(strings.TrimSpace(q.PageSize))
	filter.Page = repository.Page{Number: page, Size: size}.Normalize(defaultJobPageSize, maxJobPageSize)
	return filter
}

// postedAfter understands the named buckets, a number of days, or a
// YYYY-MM-DD date meaning midnight UTC of that day.
func postedAfter(v string, now time.Time) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	switch strings.ToLower(v) {
	case "past 24 hours":
		return now.Add(-24 * time.Hour), true
	case "past 3 days":
		return now.AddDate(0, 0, -3), true
	case "past week":
		return now.AddDate(0, 0, -7), true
	case "past month":
		return now.AddDate(0, 0, -30), true
	}
	if days, err := strconv.Atoi(v); err == nil {
		return now.AddDate(0, 0, -days), true
	}
	if d, err := time.Parse(model.DateLayout, v); err == nil {
		return d, true
	}
	return time.Time{}, false
}

func (s *jobService) Search(ctx context.Context, filter repository.JobFilter) (*JobPage, error) {
	return s.page(ctx, filter)
}

func (s *jobService) page(ctx context.Context, filter repository.JobFilter) (*JobPage, error) {
	filter.Page = filter.Page.Normalize(defaultJobPageSize, maxJobPageSize)
	jobs, total, err := s.repos.Jobs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	ids := make([]uint, len(jobs))
	for i := range jobs {
		ids[i] = jobs[i].ID
	}
	stats, err := s.repos.Jobs.Stats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("job stats: %w", err)
	}
	return &JobPage{Jobs: jobs, Stats: stats, Total: total, Page: filter.Page}, nil
}

// Get returns a job with its recruiter and company, cached by id.
func (s *jobService) Get(ctx context.Context, id uint) (*model.Job, error) {
	var cached model.Job
	if s.cache.GetJSON(ctx, cache.JobKey(id), &cached) {
		return &cached, nil
	}

	job, err := s.repos.Jobs.FindByID(ctx, id)
	if err != nil {
		return nil, dbError("find job", notFound(err, ErrJobNotFound))
	}
	if err := s.cache.SetJSON(ctx, cache.JobKey(id), job, s.cacheTTL); err != nil {
		s.log.Warn("cache job", zap.Uint("job_id", id), zap.Error(err))
	}
	return job, nil
}

// ListCompanyJobs lists every job posted by any recruiter, past or present,
// of the caller's company.
func (s *jobService) ListCompanyJobs(ctx context.Context, caller *model.User, filter repository.JobFilter) (*JobPage, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}
	companyID := caller.Recruiter.CompanyID
	company, err := s.repos.Companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, dbError("find company", notFound(err, ErrCompanyNotFound))
	}

	filter.CompanyID = &companyID
	page, err := s.page(ctx, filter)
	if err != nil {
		return nil, err
	}
	page.Company = company
	return page, nil
}

func (s *jobService) Create(ctx context.Context, caller *model.User, in JobInput) (*model.Job, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		verr.Add("job_title", "This field is required.")
	}
	salary, ok := parseSalary(verr, in.Salary)
	if !ok && strings.TrimSpace(in.Salary) == "" {
		verr.Add("job_salary", "This field is required.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	job := &model.Job{
		Title:       title,
		Description: in.Description,
		Location:    strings.TrimSpace(in.Location),
		Salary:      salary,
		RecruiterID: caller.ID,
	}
	if err := s.repos.Jobs.Create(ctx, job); err != nil {
		return nil, dbError("create job", err)
	}
	s.log.Info("job posted", zap.Uint("job_id", job.ID), zap.Uint("recruiter_id", caller.ID))

	// reload so the response carries the recruiter and company
	created, err := s.repos.Jobs.FindByID(ctx, job.ID)
	if err != nil {
		return nil, dbError("find job", err)
	}
	return created, nil
}

func (s *jobService) Update(ctx context.Context, caller *model.User, id uint, in JobUpdate) (*model.Job, error) {
	job, err := s.ownedJob(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	if in.Title != nil {
		if t := strings.TrimSpace(*in.Title); t == "" {
			verr.Add("job_title", "This field may not be blank.")
		} else {
			job.Title = t
		}
	}
	if in.Salary != nil {
		if salary, ok := parseSalary(verr, *in.Salary); ok {
			job.Salary = salary
		} else if strings.TrimSpace(*in.Salary) == "" {
			verr.Add("job_salary", "This field may not be blank.")
		}
	}
	if !verr.Empty() {
		return nil, verr
	}
	strPtrValue(&job.Description, in.Description)
	strPtrValue(&job.Location, in.Location)

	if err := s.repos.Jobs.Update(ctx, job); err != nil {
		return nil, dbError("update job", err)
	}
	_ = s.cache.Delete(ctx, cache.JobKey(id))
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if _, err := s.ownedJob(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repos.Jobs.Delete(ctx, id); err != nil {
		return dbError("delete job", notFound(err, ErrJobNotFound))
	}
	_ = s.cache.Delete(ctx, cache.JobKey(id))
	s.log.Info("job deleted", zap.Uint("job_id", id), zap.Uint("user_id", caller.ID))
	return nil
}

// ownedJob loads job id and checks the caller is the active recruiter of the
// company that owns it.
func (s *jobService) ownedJob(ctx context.Context, caller *model.User, id uint) (*model.Job, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}
	job, err := s.repos.Jobs.FindByID(ctx, id)
	if err != nil {
		return nil, dbError("find job", notFound(err, ErrJobNotFound))
	}
	if job.Recruiter == nil {
		return nil, auth.ErrPermissionDenied
	}
	if err := auth.Authorize(caller, auth.ActiveRecruiterOf(job.Recruiter.CompanyID)); err != nil {
		return nil, err
	}
	return job, nil
}

// parseSalary reads a non-negative decimal with at most two places. It
// reports false for an empty value.
func parseSalary(verr *apperrors.ValidationError, raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Add("job_salary", "A valid number is required.")
		return decimal.Zero, false
	}
	if d.IsNegative() {
		verr.Add("job_salary", "Ensure this value is greater than or equal to 0.")
		return decimal.Zero, false
	}
	return d.Round(2), true
}
