package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobmatrix/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	Update(ctx context.Context, application *model.Application) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Application, error)
	Exists(ctx context.Context, applicantID, jobID uint) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uint) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID uint) ([]model.Application, error)
	CountByStatus(ctx context.Context) (map[model.ApplicationStatus]int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(application).Error
}

func (r *applicationRepository) Update(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(application).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID loads an application with its job's recruiter so ownership can be checked.
func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*model.Application, error) {
	var application model.Application
	err := r.db.WithContext(ctx).
		Preload("Job.Recruiter").
		Preload("Applicant.User").
		First(&application, id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) Exists(ctx context.Context, applicantID, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("applicant_id = ? AND job_id = ?", applicantID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).
		Preload("Job.Recruiter.Company").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").Order("id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uint) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant.User").
		Where("job_id = ?", jobID).
		Order("created_at DESC").Order("id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context) (map[model.ApplicationStatus]int64, error) {
	var rows []struct {
		Status model.ApplicationStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
