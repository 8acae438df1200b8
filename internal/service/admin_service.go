package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/storage"
)

const adminUserPageSize = 10

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users []model.User
	Total int64
	Page  repository.Page
}

// Stats is the platform overview shown to admins.
type Stats struct {
	TotalUsers           int64
	UsersByRole          map[model.Role]int64
	Companies            int64
	Jobs                 int64
	TotalApplications    int64
	ApplicationsByStatus map[model.ApplicationStatus]int64
}

// BrokenFile is a stored reference whose object is missing.
type BrokenFile struct {
	Kind    storage.Kind
	OwnerID uint
	Path    string
}

// AdminService exposes the admin reports.
type AdminService interface {
	ListUsers(ctx context.Context, caller *model.User, filter repository.UserFilter) (*UserPage, error)
	Stats(ctx context.Context, caller *model.User) (*Stats, error)
	BrokenFiles(ctx context.Context, caller *model.User) ([]BrokenFile, error)
}

type adminService struct {
	repos    *repository.Repositories
	resolver *storage.Resolver
	log      *zap.Logger
}

// NewAdminService builds an AdminService.
func NewAdminService(repos *repository.Repositories, resolver *storage.Resolver, log *zap.Logger) AdminService {
	return &adminService{repos: repos, resolver: resolver, log: log}
}

// ListUsers pages through users, newest first.
func (s *adminService) ListUsers(ctx context.Context, caller *model.User, filter repository.UserFilter) (*UserPage, error) {
	if err := auth.Authorize(caller, auth.Admin()); err != nil {
		return nil, err
	}
	filter.Page = filter.Page.Normalize(adminUserPageSize, adminUserPageSize)
	users, total, err := s.repos.Users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &UserPage{Users: users, Total: total, Page: filter.Page}, nil
}

func (s *adminService) Stats(ctx context.Context, caller *model.User) (*Stats, error) {
	if err := auth.Authorize(caller, auth.Admin()); err != nil {
		return nil, err
	}

	byRole, err := s.repos.Users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	companies, err := s.repos.Companies.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count companies: %w", err)
	}
	jobs, err := s.repos.Jobs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	byStatus, err := s.repos.Applications.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}

	stats := &Stats{
		UsersByRole:          map[model.Role]int64{},
		Companies:            companies,
		Jobs:                 jobs,
		ApplicationsByStatus: map[model.ApplicationStatus]int64{},
	}
	for _, role := range []model.Role{model.RoleAdmin, model.RoleApplicant, model.RoleRecruiter} {
		stats.UsersByRole[role] = byRole[role]
		stats.TotalUsers += byRole[role]
	}
	for _, status := range []model.ApplicationStatus{model.ApplicationPending, model.ApplicationApproved, model.ApplicationRejected} {
		stats.ApplicationsByStatus[status] = byStatus[status]
		stats.TotalApplications += byStatus[status]
	}
	return stats, nil
}

// BrokenFiles checks every stored photo, resume and company image against the
// storage backend. Absolute URLs are not checked.
func (s *adminService) BrokenFiles(ctx context.Context, caller *model.User) ([]BrokenFile, error) {
	if err := auth.Authorize(caller, auth.Admin()); err != nil {
		return nil, err
	}

	var refs []BrokenFile
	users, err := s.repos.Users.ListWithPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	for _, u := range users {
		refs = append(refs, BrokenFile{Kind: storage.KindProfilePhoto, OwnerID: u.ID, Path: u.ProfilePhoto})
	}
	applicants, err := s.repos.Users.ListWithResumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	for _, a := range applicants {
		refs = append(refs, BrokenFile{Kind: storage.KindResume, OwnerID: a.UserID, Path: a.Resume})
	}
	companies, err := s.repos.Companies.ListWithImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list company images: %w", err)
	}
	for _, c := range companies {
		refs = append(refs, BrokenFile{Kind: storage.KindCompanyImage, OwnerID: c.ID, Path: c.Image})
	}

	broken := make([]BrokenFile, 0)
	for _, ref := range refs {
		if storage.IsAbsoluteURL(ref.Path) {
			continue
		}
		ok, err := s.resolver.Exists(ctx, ref.Path)
		if err != nil {
			s.log.Warn("check stored file", zap.String("path", ref.Path), zap.Error(err))
		}
		if err != nil || !ok {
			broken = append(broken, ref)
		}
	}
	return broken, nil
}
