package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/cache"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/storage"
)

// RecruiterSummary is a company member with the number of jobs they posted.
type RecruiterSummary struct {
	Recruiter  model.Recruiter
	JobsPosted int64
}

// CompanyDetail is a company with its recruiters and totals.
type CompanyDetail struct {
	Company          *model.Company
	Recruiters       []RecruiterSummary
	TotalRecruiters  int
	ActiveRecruiters int
	TotalJobs        int64
}

// CompanyUpdate is a partial company update. Setting NewSecretKey rotates the
// join secret and requires CurrentSecretKey.
type CompanyUpdate struct {
	Name             *string
	Industry         *string
	Description      *string
	Image            *Upload
	CurrentSecretKey string
	NewSecretKey     string
}

// CompanyService exposes the company directory and recruiter-side management.
type CompanyService interface {
	List(ctx context.Context) ([]model.Company, error)
	Detail(ctx context.Context, caller *model.User) (*CompanyDetail, error)
	Update(ctx context.Context, caller *model.User, in CompanyUpdate) (*model.Company, error)
}

type companyService struct {
	repos    *repository.Repositories
	files    storage.Backend
	cache    cache.Store
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewCompanyService builds a CompanyService.
func NewCompanyService(repos *repository.Repositories, files storage.Backend, cacheClient cache.Store, cacheTTL time.Duration, log *zap.Logger) CompanyService {
	return &companyService{repos: repos, files: files, cache: cacheOrNone(cacheClient), cacheTTL: cacheTTL, log: log}
}

// List returns every company ordered by name, served from cache when warm.
func (s *companyService) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if s.cache.GetJSON(ctx, cache.CompaniesKey(), &companies) {
		return companies, nil
	}

	companies, err := s.repos.Companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	if err := s.cache.SetJSON(ctx, cache.CompaniesKey(), companies, s.cacheTTL); err != nil {
		s.log.Warn("cache companies", zap.Error(err))
	}
	return companies, nil
}

// Detail describes the caller's company. Recruiters are listed active first,
// then by jobs posted.
func (s *companyService) Detail(ctx context.Context, caller *model.User) (*CompanyDetail, error) {
	if err := auth.Authorize(caller, auth.AnyRecruiter()); err != nil {
		return nil, err
	}
	if caller.Recruiter == nil {
		return nil, apperrors.ErrRecruiterProfileMissing
	}
	companyID := caller.Recruiter.CompanyID

	company, err := s.repos.Companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, dbError("find company", notFound(err, ErrCompanyNotFound))
	}
	recruiters, err := s.repos.Companies.ListRecruiters(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list recruiters: %w", err)
	}
	counts, err := s.repos.Companies.JobCountsByRecruiter(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}

	detail := &CompanyDetail{
		Company:         company,
		Recruiters:      make([]RecruiterSummary, 0, len(recruiters)),
		TotalRecruiters: len(recruiters),
	}
	for _, r := range recruiters {
		if r.IsActive {
			detail.ActiveRecruiters++
		}
		detail.TotalJobs += counts[r.UserID]
		detail.Recruiters = append(detail.Recruiters, RecruiterSummary{Recruiter: r, JobsPosted: counts[r.UserID]})
	}
	sortRecruiters(detail.Recruiters)
	return detail, nil
}

func sortRecruiters(rs []RecruiterSummary) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Recruiter.IsActive != rs[j].Recruiter.IsActive {
			return rs[i].Recruiter.IsActive
		}
		return rs[i].JobsPosted > rs[j].JobsPosted
	})
}

// Update changes the caller's company. Only its active recruiter may do so.
func (s *companyService) Update(ctx context.Context, caller *model.User, in CompanyUpdate) (*model.Company, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}
	companyID := caller.Recruiter.CompanyID
	if err := auth.Authorize(caller, auth.ActiveRecruiterOf(companyID)); err != nil {
		return nil, err
	}
	if in.NewSecretKey != "" && in.CurrentSecretKey == "" {
		return nil, apperrors.NewValidation("current_secret_key", "Current secret key is required to set a new one.")
	}

	image, err := storeUpload(ctx, s.files, storage.KindCompanyImage, in.Image)
	if err != nil {
		return nil, err
	}

	var company *model.Company
	err = s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		var err error
		company, err = tx.Companies.FindByIDForUpdate(ctx, companyID)
		if err != nil {
			return notFound(err, ErrCompanyNotFound)
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return apperrors.NewValidation("name", "This field may not be blank.")
			}
			if name != company.Name {
				taken, err := tx.Companies.NameExists(ctx, name, company.ID)
				if err != nil {
					return err
				}
				if taken {
					return ErrCompanyNameTaken
				}
				company.Name = name
			}
		}
		strPtrValue(&company.Industry, in.Industry)
		strPtrValue(&company.Description, in.Description)
		if image != "" {
			company.Image = image
		}

		if in.NewSecretKey != "" {
			if !secretMatches(company.SecretKeyHash, in.CurrentSecretKey) {
				return apperrors.ErrIncorrectCurrentSecret
			}
			hash, err := hashSecret("new_secret_key", in.NewSecretKey)
			if err != nil {
				return err
			}
			company.SecretKeyHash = hash
		}
		return tx.Companies.Update(ctx, company)
	})
	if err != nil {
		return nil, dbError("update company", err)
	}

	_ = s.cache.Delete(ctx, cache.CompaniesKey())
	// cached job details embed the company name and image
	if jobIDs, err := s.repos.Jobs.IDsByCompany(ctx, company.ID); err != nil {
		s.log.Warn("list company jobs for cache eviction", zap.Uint("company_id", company.ID), zap.Error(err))
	} else {
		evictJobs(ctx, s.cache, jobIDs)
	}
	if in.NewSecretKey != "" {
		s.log.Info("company secret rotated", zap.Uint("company_id", company.ID), zap.Uint("user_id", caller.ID))
	}
	return company, nil
}
