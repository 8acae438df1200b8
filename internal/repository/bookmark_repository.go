package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobmatrix/internal/model"
)

// BookmarkRepository defines bookmark persistence operations.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *model.Bookmark) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Bookmark, error)
	Exists(ctx context.Context, applicantID, jobID uint) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uint) ([]model.Bookmark, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(bookmark).Error
}

func (r *bookmarkRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Bookmark{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookmarkRepository) FindByID(ctx context.Context, id uint) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	if err := r.db.WithContext(ctx).First(&bookmark, id).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) Exists(ctx context.Context, applicantID, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("applicant_id = ? AND job_id = ?", applicantID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *bookmarkRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := r.db.WithContext(ctx).
		Preload("Job.Recruiter.Company").
		Preload("Job.Recruiter.User").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").Order("id DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}
