package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobmatrix/internal/cache"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/storage"
)

const bcryptCost = 10

// minPasswordLength matches the registration form rule.
const minPasswordLength = 8

// maxSecretBytes is the longest input bcrypt accepts.
const maxSecretBytes = 72

var (
	// ErrCompanyNotFound is returned when a company id does not exist.
	ErrCompanyNotFound = apperrors.New(apperrors.ErrNotFound, "Company not found", "COMPANY_NOT_FOUND")
	// ErrJobNotFound is returned when a job id does not exist.
	ErrJobNotFound = apperrors.New(apperrors.ErrNotFound, "Job not found", "JOB_NOT_FOUND")
	// ErrApplicationNotFound is returned when an application id does not exist.
	ErrApplicationNotFound = apperrors.New(apperrors.ErrNotFound, "Application not found", "APPLICATION_NOT_FOUND")
	// ErrBookmarkNotFound is returned when a bookmark id does not exist.
	ErrBookmarkNotFound = apperrors.New(apperrors.ErrNotFound, "Bookmark not found", "BOOKMARK_NOT_FOUND")
	// ErrProfileItemNotFound is returned for a missing skill, work or education entry.
	ErrProfileItemNotFound = apperrors.New(apperrors.ErrNotFound, "Record not found", "RECORD_NOT_FOUND")
	// ErrApplicantNotFound is returned when an applicant profile is missing.
	ErrApplicantNotFound = apperrors.New(apperrors.ErrNotFound, "Applicant profile not found", "APPLICANT_NOT_FOUND")
	// ErrRecruiterNotActive is returned when an inactive recruiter uses a recruiter-only endpoint.
	ErrRecruiterNotActive = apperrors.New(apperrors.ErrForbidden, "Your recruiter account is not active.", "RECRUITER_INACTIVE")
	// ErrCompanyNameTaken is returned when a company name is already registered.
	ErrCompanyNameTaken = apperrors.New(apperrors.ErrConflict, "A company with this name already exists", "COMPANY_NAME_TAKEN")
	// ErrSSNTaken is returned when an admin SSN is already registered.
	ErrSSNTaken = apperrors.New(apperrors.ErrConflict, "An admin with this SSN already exists", "SSN_TAKEN")
	// ErrAlreadyApplied is returned for a second application to the same job.
	ErrAlreadyApplied = apperrors.New(apperrors.ErrConflict, "You have already applied to this job", "ALREADY_APPLIED")
	// ErrAlreadyBookmarked is returned for a second bookmark on the same job.
	ErrAlreadyBookmarked = apperrors.New(apperrors.ErrConflict, "Job is already bookmarked", "ALREADY_BOOKMARKED")
	// ErrApplicationNotPending is returned when withdrawing a reviewed application.
	ErrApplicationNotPending = apperrors.New(apperrors.ErrConflict, "Only pending applications can be withdrawn", "APPLICATION_NOT_PENDING")
	// ErrDuplicate is the generic uniqueness violation.
	ErrDuplicate = apperrors.New(apperrors.ErrConflict, "Resource already exists", "CONFLICT")
)

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// storeUpload saves up under a fresh key in kind's folder. Nil uploads are a
// no-op. The write is not part of any database transaction.
func storeUpload(ctx context.Context, files storage.Backend, kind storage.Kind, up *Upload) (string, error) {
	if up == nil || up.Reader == nil {
		return "", nil
	}
	key := storage.NewKey(kind, up.Filename)
	if err := files.Put(ctx, key, up.Reader, up.Size, up.ContentType); err != nil {
		return "", fmt.Errorf("store %s: %w", kind, err)
	}
	return key, nil
}

// notFound swaps gorm's not-found error for a domain error.
func notFound(err error, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

// dbError wraps a database error, turning unique violations into Conflict.
func dbError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	var derr *apperrors.Error
	var verr *apperrors.ValidationError
	if errors.As(err, &derr) || errors.As(err, &verr) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// hashSecret bcrypt-hashes a password or company key. Input bcrypt cannot
// take is reported against field.
func hashSecret(field, secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewValidation(field, tooLongMessage)
	}
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", field, err)
	}
	return string(hashed), nil
}

var tooLongMessage = fmt.Sprintf("Ensure this field has no more than %d characters.", maxSecretBytes)

func secretMatches(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// cacheOrNone maps a missing store to the always-miss client.
func cacheOrNone(store cache.Store) cache.Store {
	if store == nil {
		return (*cache.Client)(nil)
	}
	return store
}

// evictJobs drops cached job details for ids.
func evictJobs(ctx context.Context, store cache.Store, ids []uint) {
	if len(ids) == 0 {
		return
	}
	_ = store.Delete(ctx, cache.JobKeys(ids)...)
}

func strPtrValue(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
