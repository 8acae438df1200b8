package auth

import (
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
)

// Check is a capability test evaluated against the calling user.
type Check func(caller *model.User) bool

// Self passes when the caller is the user with userID.
func Self(userID uint) Check {
	return func(caller *model.User) bool {
		return caller != nil && caller.ID == userID
	}
}

// HasRole passes when the caller has role.
func HasRole(role model.Role) Check {
	return func(caller *model.User) bool {
		return caller != nil && caller.Role == role
	}
}

// Admin passes for administrators.
func Admin() Check { return HasRole(model.RoleAdmin) }

// Applicant passes for applicants.
func Applicant() Check { return HasRole(model.RoleApplicant) }

// AnyRecruiter passes for recruiters, active or not.
func AnyRecruiter() Check { return HasRole(model.RoleRecruiter) }

// ActiveRecruiter passes for a recruiter whose tenure is still open.
func ActiveRecruiter() Check {
	return func(caller *model.User) bool {
		return caller != nil &&
			caller.Role == model.RoleRecruiter &&
			caller.Recruiter != nil &&
			caller.Recruiter.IsActive
	}
}

// ActiveRecruiterOf passes for the active recruiter of companyID.
func ActiveRecruiterOf(companyID uint) Check {
	active := ActiveRecruiter()
	return func(caller *model.User) bool {
		return active(caller) && caller.Recruiter.CompanyID == companyID
	}
}

// AnyOf passes when at least one check passes.
func AnyOf(checks ...Check) Check {
	return func(caller *model.User) bool {
		for _, check := range checks {
			if check(caller) {
				return true
			}
		}
		return false
	}
}

// AllOf passes when every check passes.
func AllOf(checks ...Check) Check {
	return func(caller *model.User) bool {
		for _, check := range checks {
			if !check(caller) {
				return false
			}
		}
		return len(checks) > 0
	}
}

// ErrPermissionDenied is the default authorization failure.
var ErrPermissionDenied = apperrors.New(apperrors.ErrForbidden, "You do not have permission to perform this action.", "FORBIDDEN")

// Authorize returns ErrPermissionDenied unless check passes.
func Authorize(caller *model.User, check Check) error {
	if check(caller) {
		return nil
	}
	return ErrPermissionDenied
}
