package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmatrix/internal/model"
)

func TestChecks(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	applicant := &model.User{ID: 2, Role: model.RoleApplicant}
	active := &model.User{ID: 3, Role: model.RoleRecruiter, Recruiter: &model.Recruiter{UserID: 3, CompanyID: 10, IsActive: true}}
	former := &model.User{ID: 4, Role: model.RoleRecruiter, Recruiter: &model.Recruiter{UserID: 4, CompanyID: 10}}
	unloaded := &model.User{ID: 5, Role: model.RoleRecruiter}

	tests := []struct {
		name   string
		check  Check
		caller *model.User
		want   bool
	}{
		{name: "self", check: Self(2), caller: applicant, want: true},
		{name: "not self", check: Self(2), caller: admin, want: false},
		{name: "nil caller", check: Self(0), caller: nil, want: false},
		{name: "admin", check: Admin(), caller: admin, want: true},
		{name: "applicant is not admin", check: Admin(), caller: applicant, want: false},
		{name: "applicant", check: Applicant(), caller: applicant, want: true},
		{name: "former recruiter is any recruiter", check: AnyRecruiter(), caller: former, want: true},
		{name: "active recruiter", check: ActiveRecruiter(), caller: active, want: true},
		{name: "former recruiter is not active", check: ActiveRecruiter(), caller: former, want: false},
		{name: "recruiter record not loaded", check: ActiveRecruiter(), caller: unloaded, want: false},
		{name: "active recruiter of own company", check: ActiveRecruiterOf(10), caller: active, want: true},
		{name: "active recruiter of other company", check: ActiveRecruiterOf(11), caller: active, want: false},
		{name: "any of", check: AnyOf(Self(9), Admin()), caller: admin, want: true},
		{name: "any of none", check: AnyOf(), caller: admin, want: false},
		{name: "all of", check: AllOf(AnyRecruiter(), Self(4)), caller: former, want: true},
		{name: "all of fails", check: AllOf(AnyRecruiter(), ActiveRecruiter()), caller: former, want: false},
		{name: "all of none", check: AllOf(), caller: admin, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.caller))
		})
	}
}

func TestAuthorize(t *testing.T) {
	caller := &model.User{ID: 1, Role: model.RoleApplicant}
	assert.NoError(t, Authorize(caller, Applicant()))
	assert.ErrorIs(t, Authorize(caller, Admin()), ErrPermissionDenied)
}
