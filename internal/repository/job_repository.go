package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobmatrix/internal/model"
)

// JobFilter narrows job listings. Nil or empty fields are not applied.
type JobFilter struct {
	CompanyID   *uint
	Title       string
	Location    string
	MinSalary   *decimal.Decimal
	PostedAfter *time.Time
	Page        Page
}

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	List(ctx context.Context, filter JobFilter) ([]model.Job, int64, error)
	Stats(ctx context.Context, jobIDs []uint) (map[uint]model.ApplicationStats, error)
	Count(ctx context.Context) (int64, error)
	IDsByRecruiter(ctx context.Context, recruiterID uint) ([]uint, error)
	IDsByCompany(ctx context.Context, companyID uint) ([]uint, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&model.Bookmark{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Job{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// FindByID loads a job with its recruiter, the recruiter's user and company.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).
		Preload("Recruiter.User").
		Preload("Recruiter.Company").
		First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns one page of jobs, newest first, and the total match count.
func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]model.Job, int64, error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.Job{})
		if filter.CompanyID != nil {
			q = q.Joins("JOIN recruiters ON recruiters.user_id = jobs.recruiter_id").
				Where("recruiters.company_id = ?", *filter.CompanyID)
		}
		if s := strings.ToLower(strings.TrimSpace(filter.Title)); s != "" {
			q = q.Where("LOWER(jobs.title) LIKE ?", likePattern(s))
		}
		if s := strings.ToLower(strings.TrimSpace(filter.Location)); s != "" {
			q = q.Where("LOWER(jobs.location) LIKE ?", likePattern(s))
		}
		if filter.MinSalary != nil {
			q = q.Where("jobs.salary >= ?", *filter.MinSalary)
		}
		if filter.PostedAfter != nil {
			q = q.Where("jobs.posted_at >= ?", *filter.PostedAfter)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := query().
		Preload("Recruiter.User").
		Preload("Recruiter.Company").
		Order("jobs.posted_at DESC").Order("jobs.id DESC").
		Offset(filter.Page.Offset()).Limit(filter.Page.Size).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Stats counts applications by status for every job in jobIDs with a single
// grouped query. Jobs without applications get zero counts.
func (r *jobRepository) Stats(ctx context.Context, jobIDs []uint) (map[uint]model.ApplicationStats, error) {
	stats := make(map[uint]model.ApplicationStats, len(jobIDs))
	if len(jobIDs) == 0 {
		return stats, nil
	}
	for _, id := range jobIDs {
		stats[id] = model.ApplicationStats{}
	}

	var rows []struct {
		JobID  uint
		Status model.ApplicationStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Select("job_id, status, COUNT(*) AS count").
		Where("job_id IN ?", jobIDs).
		Group("job_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		s := stats[row.JobID]
		s.Total += row.Count
		switch row.Status {
		case model.ApplicationApproved:
			s.Approved += row.Count
		case model.ApplicationRejected:
			s.Rejected += row.Count
		case model.ApplicationPending:
			s.Pending += row.Count
		}
		stats[row.JobID] = s
	}
	return stats, nil
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error
	return count, err
}

// IDsByRecruiter lists the ids of jobs posted by one recruiter.
func (r *jobRepository) IDsByRecruiter(ctx context.Context, recruiterID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("recruiter_id = ?", recruiterID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// IDsByCompany lists the ids of jobs posted by any recruiter of a company.
func (r *jobRepository) IDsByCompany(ctx context.Context, companyID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Joins("JOIN recruiters ON recruiters.user_id = jobs.recruiter_id").
		Where("recruiters.company_id = ?", companyID).
		Order("jobs.id").
		Pluck("jobs.id", &ids).Error
	return ids, err
}
