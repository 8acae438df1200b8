package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/cache"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/storage"
)

// Profile is a user with the extension that matches its role.
type Profile struct {
	User      *model.User
	Admin     *model.Admin
	Applicant *ApplicantProfile
	Recruiter *model.Recruiter
}

// ApplicantProfile is an applicant with its profile records.
type ApplicantProfile struct {
	Applicant      *model.Applicant
	Skills         []model.Skill
	WorkExperience []model.WorkExperience
	Education      []model.Education
}

// UserUpdate is a partial update. Nil fields are left unchanged.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	StreetNo     *string
	City         *string
	State        *string
	ZipCode      *string
	ProfilePhoto *Upload
}

// UserService exposes account operations.
type UserService interface {
	GetProfile(ctx context.Context, caller *model.User, id uint) (*Profile, error)
	GetProfileByEmail(ctx context.Context, caller *model.User, email string) (*Profile, error)
	Update(ctx context.Context, caller *model.User, id uint, in UserUpdate) (*model.User, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
	UpdateResume(ctx context.Context, caller *model.User, up *Upload) (*model.Applicant, error)
	SearchApplicants(ctx context.Context, caller *model.User, filter repository.ApplicantFilter) ([]model.Applicant, error)
	DeactivateSelf(ctx context.Context, caller *model.User) (*model.Recruiter, error)
}

type userService struct {
	repos *repository.Repositories
	files storage.Backend
	cache cache.Store
	log   *zap.Logger
	now   func() time.Time
}

// NewUserService builds a UserService. The cache holds job details that
// show a recruiter's name, so recruiter changes evict them.
func NewUserService(repos *repository.Repositories, files storage.Backend, cacheClient cache.Store, log *zap.Logger) UserService {
	return &userService{repos: repos, files: files, cache: cacheOrNone(cacheClient), log: log, now: time.Now}
}

func (s *userService) GetProfile(ctx context.Context, caller *model.User, id uint) (*Profile, error) {
	// checked before the lookup: a denied caller gets the same error for any id
	if err := auth.Authorize(caller, auth.AnyOf(auth.Self(id), auth.Admin(), auth.AnyRecruiter())); err != nil {
		return nil, err
	}
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return s.profile(ctx, user)
}

// GetProfileByEmail looks a user up by email. An empty email returns the
// caller's own profile.
func (s *userService) GetProfileByEmail(ctx context.Context, caller *model.User, email string) (*Profile, error) {
	if strings.TrimSpace(email) == "" {
		if caller == nil {
			return nil, auth.ErrPermissionDenied
		}
		return s.GetProfile(ctx, caller, caller.ID)
	}
	if caller == nil || !strings.EqualFold(strings.TrimSpace(email), caller.Email) {
		if err := auth.Authorize(caller, auth.AnyOf(auth.Admin(), auth.AnyRecruiter())); err != nil {
			return nil, err
		}
	}
	user, err := s.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return s.profile(ctx, user)
}

func (s *userService) profile(ctx context.Context, user *model.User) (*Profile, error) {
	p := &Profile{User: user}
	var err error
	switch user.Role {
	case model.RoleAdmin:
		p.Admin, err = s.repos.Users.FindAdmin(ctx, user.ID)
	case model.RoleRecruiter:
		p.Recruiter, err = s.repos.Users.FindRecruiter(ctx, user.ID)
	case model.RoleApplicant:
		p.Applicant, err = s.applicantProfile(ctx, user.ID)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load %s profile: %w", strings.ToLower(string(user.Role)), err)
	}
	return p, nil
}

func (s *userService) applicantProfile(ctx context.Context, userID uint) (*ApplicantProfile, error) {
	applicant, err := s.repos.Users.FindApplicant(ctx, userID)
	if err != nil {
		return nil, err
	}
	ap := &ApplicantProfile{Applicant: applicant}
	if ap.Skills, err = s.repos.Profiles.ListSkills(ctx, userID); err != nil {
		return nil, err
	}
	if ap.WorkExperience, err = s.repos.Profiles.ListWorkExperience(ctx, userID); err != nil {
		return nil, err
	}
	if ap.Education, err = s.repos.Profiles.ListEducation(ctx, userID); err != nil {
		return nil, err
	}
	return ap, nil
}

func (s *userService) Update(ctx context.Context, caller *model.User, id uint, in UserUpdate) (*model.User, error) {
	if err := auth.Authorize(caller, auth.AnyOf(auth.Self(id), auth.Admin())); err != nil {
		return nil, err
	}
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, apperrors.NewValidation("email", "This field may not be blank.")
		}
		if email != user.Email {
			taken, err := s.repos.Users.EmailExists(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, apperrors.ErrEmailTaken
			}
			user.Email = email
		}
	}
	strPtrValue(&user.FirstName, in.FirstName)
	strPtrValue(&user.LastName, in.LastName)
	strPtrValue(&user.Phone, in.Phone)
	strPtrValue(&user.StreetNo, in.StreetNo)
	strPtrValue(&user.City, in.City)
	strPtrValue(&user.State, in.State)
	strPtrValue(&user.ZipCode, in.ZipCode)
	if strings.TrimSpace(user.FirstName) == "" || strings.TrimSpace(user.LastName) == "" {
		return nil, apperrors.NewValidation("name", "First and last name may not be blank.")
	}

	if in.ProfilePhoto != nil {
		photo, err := storeUpload(ctx, s.files, storage.KindProfilePhoto, in.ProfilePhoto)
		if err != nil {
			return nil, err
		}
		user.ProfilePhoto = photo
	}

	if err := s.repos.Users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, dbError("update user", err)
	}
	if user.Role == model.RoleRecruiter {
		s.evictRecruiterJobs(ctx, user.ID)
	}
	return user, nil
}

// Delete removes the user and everything it owns.
func (s *userService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if err := auth.Authorize(caller, auth.AnyOf(auth.Self(id), auth.Admin())); err != nil {
		return err
	}
	jobIDs, err := s.repos.Jobs.IDsByRecruiter(ctx, id)
	if err != nil {
		return dbError("list user jobs", err)
	}
	if err := s.repos.Users.Delete(ctx, id); err != nil {
		return dbError("delete user", notFound(err, apperrors.ErrUserNotFound))
	}
	evictJobs(ctx, s.cache, jobIDs)
	s.log.Info("user deleted", zap.Uint("user_id", id), zap.Uint("deleted_by", caller.ID), zap.Int("jobs_removed", len(jobIDs)))
	return nil
}

func (s *userService) evictRecruiterJobs(ctx context.Context, recruiterID uint) {
	ids, err := s.repos.Jobs.IDsByRecruiter(ctx, recruiterID)
	if err != nil {
		s.log.Warn("list recruiter jobs for cache eviction", zap.Uint("user_id", recruiterID), zap.Error(err))
		return
	}
	evictJobs(ctx, s.cache, ids)
}

func (s *userService) UpdateResume(ctx context.Context, caller *model.User, up *Upload) (*model.Applicant, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	if up == nil || up.Reader == nil {
		return nil, apperrors.NewValidation("resume", "No file was submitted.")
	}
	applicant, err := s.repos.Users.FindApplicant(ctx, caller.ID)
	if err != nil {
		return nil, notFound(err, ErrApplicantNotFound)
	}
	key, err := storeUpload(ctx, s.files, storage.KindResume, up)
	if err != nil {
		return nil, err
	}
	applicant.Resume = key
	if err := s.repos.Users.UpdateApplicant(ctx, applicant); err != nil {
		return nil, dbError("update resume", err)
	}
	return applicant, nil
}

func (s *userService) SearchApplicants(ctx context.Context, caller *model.User, filter repository.ApplicantFilter) ([]model.Applicant, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}
	applicants, err := s.repos.Users.ListApplicants(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	return applicants, nil
}

// DeactivateSelf ends the caller's recruiter tenure today. The company is
// left without an active recruiter until someone joins.
func (s *userService) DeactivateSelf(ctx context.Context, caller *model.User) (*model.Recruiter, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}
	recruiter, err := s.repos.Users.FindRecruiter(ctx, caller.ID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRecruiterProfileMissing)
	}
	recruiter.Deactivate(s.now())
	if err := s.repos.Users.UpdateRecruiter(ctx, recruiter); err != nil {
		return nil, dbError("deactivate recruiter", err)
	}
	s.log.Info("recruiter deactivated",
		zap.Uint("user_id", caller.ID),
		zap.Uint("company_id", recruiter.CompanyID),
	)
	return recruiter, nil
}

// requireActiveRecruiter distinguishes inactive recruiters from other roles.
func requireActiveRecruiter(caller *model.User) error {
	if err := auth.Authorize(caller, auth.AnyRecruiter()); err != nil {
		return err
	}
	if !auth.ActiveRecruiter()(caller) {
		return ErrRecruiterNotActive
	}
	return nil
}
