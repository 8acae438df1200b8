package repository

import (
	"context"

	"gorm.io/gorm"

	"jobmatrix/internal/model"
)

// CompanyRepository defines company and membership persistence operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uint) (*model.Company, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Company, error)
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)
	List(ctx context.Context) ([]model.Company, error)
	ListWithImages(ctx context.Context) ([]model.Company, error)
	Count(ctx context.Context) (int64, error)

	ListRecruiters(ctx context.Context, companyID uint) ([]model.Recruiter, error)
	FindActiveRecruiters(ctx context.Context, companyID uint) ([]model.Recruiter, error)
	JobCountsByRecruiter(ctx context.Context, companyID uint) (map[uint]int64, error)
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) FindByID(ctx context.Context, id uint) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByIDForUpdate finds a company by ID with a row-level lock so concurrent
// recruiter handovers on the same company serialize.
func (r *companyRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Company, error) {
	var company model.Company
	if err := forUpdate(r.db.WithContext(ctx)).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Company{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *companyRepository) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.WithContext(ctx).Order("name").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) ListWithImages(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.WithContext(ctx).Where("image <> ''").Order("id").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Company{}).Count(&count).Error
	return count, err
}

func (r *companyRepository) ListRecruiters(ctx context.Context, companyID uint) ([]model.Recruiter, error) {
	var recruiters []model.Recruiter
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("company_id = ?", companyID).
		Order("user_id").
		Find(&recruiters).Error
	if err != nil {
		return nil, err
	}
	return recruiters, nil
}

// FindActiveRecruiters returns the active recruiters of a company, locking
// them when the dialect supports it.
func (r *companyRepository) FindActiveRecruiters(ctx context.Context, companyID uint) ([]model.Recruiter, error) {
	var recruiters []model.Recruiter
	err := forUpdate(r.db.WithContext(ctx)).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("start_date DESC").
		Find(&recruiters).Error
	if err != nil {
		return nil, err
	}
	return recruiters, nil
}

func (r *companyRepository) JobCountsByRecruiter(ctx context.Context, companyID uint) (map[uint]int64, error) {
	var rows []struct {
		RecruiterID uint
		Count       int64
	}
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Select("jobs.recruiter_id, COUNT(*) AS count").
		Joins("JOIN recruiters ON recruiters.user_id = jobs.recruiter_id").
		Where("recruiters.company_id = ?", companyID).
		Group("jobs.recruiter_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.RecruiterID] = row.Count
	}
	return counts, nil
}
