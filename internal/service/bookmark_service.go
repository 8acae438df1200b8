package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
)

// BookmarkService manages an applicant's saved jobs.
type BookmarkService interface {
	Add(ctx context.Context, caller *model.User, jobID uint) (*model.Bookmark, error)
	List(ctx context.Context, caller *model.User) ([]model.Bookmark, error)
	Remove(ctx context.Context, caller *model.User, id uint) error
}

type bookmarkService struct {
	repos *repository.Repositories
}

// NewBookmarkService builds a BookmarkService.
func NewBookmarkService(repos *repository.Repositories) BookmarkService {
	return &bookmarkService{repos: repos}
}

func (s *bookmarkService) Add(ctx context.Context, caller *model.User, jobID uint) (*model.Bookmark, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	if _, err := s.repos.Jobs.FindByID(ctx, jobID); err != nil {
		return nil, dbError("find job", notFound(err, ErrJobNotFound))
	}
	exists, err := s.repos.Bookmarks.Exists(ctx, caller.ID, jobID)
	if err != nil {
		return nil, fmt.Errorf("check bookmark: %w", err)
	}
	if exists {
		return nil, ErrAlreadyBookmarked
	}

	bookmark := &model.Bookmark{ApplicantID: caller.ID, JobID: jobID}
	if err := s.repos.Bookmarks.Create(ctx, bookmark); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyBookmarked
		}
		return nil, dbError("create bookmark", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) List(ctx context.Context, caller *model.User) ([]model.Bookmark, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	bookmarks, err := s.repos.Bookmarks.ListByApplicant(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Remove deletes one of the caller's bookmarks. Other applicants' bookmarks
// are reported as missing.
func (s *bookmarkService) Remove(ctx context.Context, caller *model.User, id uint) error {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return err
	}
	bookmark, err := s.repos.Bookmarks.FindByID(ctx, id)
	if err != nil {
		return dbError("find bookmark", notFound(err, ErrBookmarkNotFound))
	}
	if bookmark.ApplicantID != caller.ID {
		return ErrBookmarkNotFound
	}
	return dbError("delete bookmark", notFound(s.repos.Bookmarks.Delete(ctx, id), ErrBookmarkNotFound))
}
