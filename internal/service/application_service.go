package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"jobmatrix/internal/auth"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
)

// ApplicationReview is a recruiter's decision on an application.
type ApplicationReview struct {
	Status  *string
	Comment *string
}

// ApplicationService drives the application lifecycle.
type ApplicationService interface {
	Apply(ctx context.Context, caller *model.User, jobID uint) (*model.Application, error)
	ListMine(ctx context.Context, caller *model.User) ([]model.Application, error)
	ListForJob(ctx context.Context, caller *model.User, jobID uint) ([]model.Application, error)
	Review(ctx context.Context, caller *model.User, id uint, in ApplicationReview) (*model.Application, error)
	Withdraw(ctx context.Context, caller *model.User, id uint) error
}

type applicationService struct {
	repos *repository.Repositories
	log   *zap.Logger
}

// NewApplicationService builds an ApplicationService.
func NewApplicationService(repos *repository.Repositories, log *zap.Logger) ApplicationService {
	return &applicationService{repos: repos, log: log}
}

func (s *applicationService) Apply(ctx context.Context, caller *model.User, jobID uint) (*model.Application, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	if _, err := s.repos.Jobs.FindByID(ctx, jobID); err != nil {
		return nil, dbError("find job", notFound(err, ErrJobNotFound))
	}
	exists, err := s.repos.Applications.Exists(ctx, caller.ID, jobID)
	if err != nil {
		return nil, fmt.Errorf("check application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	application := &model.Application{
		ApplicantID: caller.ID,
		JobID:       jobID,
		Status:      model.ApplicationPending,
	}
	if err := s.repos.Applications.Create(ctx, application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, dbError("create application", err)
	}
	s.log.Info("application submitted",
		zap.Uint("application_id", application.ID),
		zap.Uint("job_id", jobID),
		zap.Uint("applicant_id", caller.ID),
	)
	return application, nil
}

func (s *applicationService) ListMine(ctx context.Context, caller *model.User) ([]model.Application, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	applications, err := s.repos.Applications.ListByApplicant(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

// ListForJob returns the applications to a job of the caller's company.
func (s *applicationService) ListForJob(ctx context.Context, caller *model.User, jobID uint) ([]model.Application, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}
	job, err := s.repos.Jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, dbError("find job", notFound(err, ErrJobNotFound))
	}
	if err := authorizeJobRecruiter(caller, job); err != nil {
		return nil, err
	}
	applications, err := s.repos.Applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

func (s *applicationService) Review(ctx context.Context, caller *model.User, id uint, in ApplicationReview) (*model.Application, error) {
	if err := requireActiveRecruiter(caller); err != nil {
		return nil, err
	}
	application, err := s.repos.Applications.FindByID(ctx, id)
	if err != nil {
		return nil, dbError("find application", notFound(err, ErrApplicationNotFound))
	}
	if err := authorizeJobRecruiter(caller, application.Job); err != nil {
		return nil, err
	}

	if in.Status != nil {
		status := model.ApplicationStatus(strings.ToUpper(strings.TrimSpace(*in.Status)))
		if !status.Valid() {
			return nil, apperrors.NewValidation("status", "Status must be one of PENDING, APPROVED, REJECTED.")
		}
		application.Status = status
	}
	strPtrValue(&application.RecruiterComment, in.Comment)

	if err := s.repos.Applications.Update(ctx, application); err != nil {
		return nil, dbError("update application", err)
	}
	s.log.Info("application reviewed",
		zap.Uint("application_id", application.ID),
		zap.String("status", string(application.Status)),
		zap.Uint("recruiter_id", caller.ID),
	)
	return application, nil
}

// Withdraw deletes the caller's own application while it is still pending.
func (s *applicationService) Withdraw(ctx context.Context, caller *model.User, id uint) error {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return err
	}
	application, err := s.repos.Applications.FindByID(ctx, id)
	if err != nil {
		return dbError("find application", notFound(err, ErrApplicationNotFound))
	}
	if application.ApplicantID != caller.ID {
		return ErrApplicationNotFound
	}
	if application.Status != model.ApplicationPending {
		return ErrApplicationNotPending
	}
	if err := s.repos.Applications.Delete(ctx, id); err != nil {
		return dbError("delete application", notFound(err, ErrApplicationNotFound))
	}
	return nil
}

func authorizeJobRecruiter(caller *model.User, job *model.Job) error {
	if job == nil || job.Recruiter == nil {
		return auth.ErrPermissionDenied
	}
	return auth.Authorize(caller, auth.ActiveRecruiterOf(job.Recruiter.CompanyID))
}
