package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobmatrix/internal/model"
)

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Role   model.Role
	Search string
	Page   Page
}

// ApplicantFilter narrows the recruiter applicant search.
type ApplicantFilter struct {
	Email     string
	ID        uint
	FirstName string
	LastName  string
}

// UserRepository defines persistence operations for users and their role
// extensions.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindForAuth(ctx context.Context, id uint) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter UserFilter) ([]model.User, int64, error)
	CountByRole(ctx context.Context) (map[model.Role]int64, error)
	ListWithPhotos(ctx context.Context) ([]model.User, error)

	CreateAdmin(ctx context.Context, admin *model.Admin) error
	FindAdmin(ctx context.Context, userID uint) (*model.Admin, error)
	SSNExists(ctx context.Context, ssn string) (bool, error)

	CreateApplicant(ctx context.Context, applicant *model.Applicant) error
	FindApplicant(ctx context.Context, userID uint) (*model.Applicant, error)
	UpdateApplicant(ctx context.Context, applicant *model.Applicant) error
	ListApplicants(ctx context.Context, filter ApplicantFilter) ([]model.Applicant, error)
	ListWithResumes(ctx context.Context) ([]model.Applicant, error)

	CreateRecruiter(ctx context.Context, recruiter *model.Recruiter) error
	FindRecruiter(ctx context.Context, userID uint) (*model.Recruiter, error)
	UpdateRecruiter(ctx context.Context, recruiter *model.Recruiter) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
}

// Delete removes the user. Role extensions and owned rows go with it through
// ON DELETE CASCADE; they are also removed explicitly for dialects that do
// not enforce foreign keys.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&model.Application{},
			&model.Bookmark{},
			&model.WorkExperience{},
			&model.Education{},
			&model.Skill{},
		}
		for _, m := range owned {
			if err := tx.Where("applicant_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		var jobIDs []uint
		if err := tx.Model(&model.Job{}).Where("recruiter_id = ?", id).Pluck("id", &jobIDs).Error; err != nil {
			return err
		}
		if len(jobIDs) > 0 {
			for _, m := range []interface{}{&model.Application{}, &model.Bookmark{}} {
				if err := tx.Where("job_id IN ?", jobIDs).Delete(m).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("id IN ?", jobIDs).Delete(&model.Job{}).Error; err != nil {
				return err
			}
		}
		for _, m := range []interface{}{&model.Admin{}, &model.Applicant{}, &model.Recruiter{}} {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindForAuth loads the user and, for recruiters, the recruiter record.
func (r *userRepository) FindForAuth(ctx context.Context, id uint) (*model.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleRecruiter {
		return user, nil
	}
	recruiter, err := r.FindRecruiter(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	user.Recruiter = recruiter
	return user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]model.User, int64, error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.User{})
		if filter.Role != "" {
			q = q.Where("role = ?", filter.Role)
		}
		if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
			q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", likePattern(s), likePattern(s))
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query().
		Order("created_at DESC").Order("id DESC").
		Offset(filter.Page.Offset()).Limit(filter.Page.Size).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) CountByRole(ctx context.Context) (map[model.Role]int64, error) {
	var rows []struct {
		Role  model.Role
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.Role]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

func (r *userRepository) ListWithPhotos(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Where("profile_photo <> ''").Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(admin).Error
}

func (r *userRepository) FindAdmin(ctx context.Context, userID uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *userRepository) SSNExists(ctx context.Context, ssn string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Admin{}).Where("ssn = ?", ssn).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) CreateApplicant(ctx context.Context, applicant *model.Applicant) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(applicant).Error
}

func (r *userRepository) FindApplicant(ctx context.Context, userID uint) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&applicant).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *userRepository) UpdateApplicant(ctx context.Context, applicant *model.Applicant) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(applicant).Error
}

func (r *userRepository) ListApplicants(ctx context.Context, filter ApplicantFilter) ([]model.Applicant, error) {
	q := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = applicants.user_id").
		Preload("User")
	if filter.ID != 0 {
		q = q.Where("applicants.user_id = ?", filter.ID)
	}
	if filter.Email != "" {
		q = q.Where("LOWER(users.email) LIKE ?", likePattern(strings.ToLower(filter.Email)))
	}
	if filter.FirstName != "" {
		q = q.Where("LOWER(users.first_name) LIKE ?", likePattern(strings.ToLower(filter.FirstName)))
	}
	if filter.LastName != "" {
		q = q.Where("LOWER(users.last_name) LIKE ?", likePattern(strings.ToLower(filter.LastName)))
	}

	var applicants []model.Applicant
	if err := q.Order("applicants.user_id").Find(&applicants).Error; err != nil {
		return nil, err
	}
	return applicants, nil
}

func (r *userRepository) ListWithResumes(ctx context.Context) ([]model.Applicant, error) {
	var applicants []model.Applicant
	err := r.db.WithContext(ctx).Where("resume <> ''").Order("user_id").Find(&applicants).Error
	return applicants, err
}

func (r *userRepository) CreateRecruiter(ctx context.Context, recruiter *model.Recruiter) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recruiter).Error
}

func (r *userRepository) FindRecruiter(ctx context.Context, userID uint) (*model.Recruiter, error) {
	var recruiter model.Recruiter
	if err := r.db.WithContext(ctx).Preload("Company").Where("user_id = ?", userID).First(&recruiter).Error; err != nil {
		return nil, err
	}
	return &recruiter, nil
}

func (r *userRepository) UpdateRecruiter(ctx context.Context, recruiter *model.Recruiter) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recruiter).Error
}
