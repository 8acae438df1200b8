package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobmatrix/internal/model"
)

// ProfileRepository persists the repeatable records on an applicant profile.
type ProfileRepository interface {
	CreateSkill(ctx context.Context, skill *model.Skill) error
	ListSkills(ctx context.Context, applicantID uint) ([]model.Skill, error)
	DeleteSkill(ctx context.Context, applicantID, id uint) error

	SaveWorkExperience(ctx context.Context, work *model.WorkExperience) error
	FindWorkExperience(ctx context.Context, applicantID, id uint) (*model.WorkExperience, error)
	ListWorkExperience(ctx context.Context, applicantID uint) ([]model.WorkExperience, error)
	DeleteWorkExperience(ctx context.Context, applicantID, id uint) error

	SaveEducation(ctx context.Context, education *model.Education) error
	FindEducation(ctx context.Context, applicantID, id uint) (*model.Education, error)
	ListEducation(ctx context.Context, applicantID uint) ([]model.Education, error)
	DeleteEducation(ctx context.Context, applicantID, id uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateSkill(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(skill).Error
}

func (r *profileRepository) ListSkills(ctx context.Context, applicantID uint) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).Order("id").Find(&skills).Error
	return skills, err
}

func (r *profileRepository) DeleteSkill(ctx context.Context, applicantID, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Skill{}, applicantID, id)
}

// SaveWorkExperience inserts or updates; the model hook enforces the date rules.
func (r *profileRepository) SaveWorkExperience(ctx context.Context, work *model.WorkExperience) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(work).Error
}

func (r *profileRepository) FindWorkExperience(ctx context.Context, applicantID, id uint) (*model.WorkExperience, error) {
	var work model.WorkExperience
	if err := r.db.WithContext(ctx).Where("applicant_id = ? AND id = ?", applicantID, id).First(&work).Error; err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *profileRepository) ListWorkExperience(ctx context.Context, applicantID uint) ([]model.WorkExperience, error) {
	var items []model.WorkExperience
	err := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).Order("start_date DESC").Find(&items).Error
	return items, err
}

func (r *profileRepository) DeleteWorkExperience(ctx context.Context, applicantID, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.WorkExperience{}, applicantID, id)
}

func (r *profileRepository) SaveEducation(ctx context.Context, education *model.Education) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(education).Error
}

func (r *profileRepository) FindEducation(ctx context.Context, applicantID, id uint) (*model.Education, error) {
	var education model.Education
	if err := r.db.WithContext(ctx).Where("applicant_id = ? AND id = ?", applicantID, id).First(&education).Error; err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *profileRepository) ListEducation(ctx context.Context, applicantID uint) ([]model.Education, error) {
	var items []model.Education
	err := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).Order("start_date DESC").Find(&items).Error
	return items, err
}

func (r *profileRepository) DeleteEducation(ctx context.Context, applicantID, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Education{}, applicantID, id)
}

// deleteOwned removes row id only if it belongs to applicantID.
func deleteOwned(db *gorm.DB, m interface{}, applicantID, id uint) error {
	res := db.Where("applicant_id = ? AND id = ?", applicantID, id).Delete(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
