package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"jobmatrix/internal/auth"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
)

// SkillInput creates a skill.
type SkillInput struct {
	Name              string
	YearsOfExperience int
}

// WorkExperienceInput creates or replaces a work experience entry.
type WorkExperienceInput struct {
	JobTitle         string
	CompanyName      string
	StartDate        string
	EndDate          string
	CurrentlyWorking bool
	Description      string
}

// EducationInput creates or replaces an education entry.
type EducationInput struct {
	Institution       string
	Degree            string
	FieldOfStudy      string
	StartDate         string
	EndDate           string
	CurrentlyEnrolled bool
	GPA               string
}

// ProfileService manages the caller's skills, work experience and education.
// Every operation is limited to applicants and to their own records.
type ProfileService interface {
	AddSkill(ctx context.Context, caller *model.User, in SkillInput) (*model.Skill, error)
	ListSkills(ctx context.Context, caller *model.User) ([]model.Skill, error)
	DeleteSkill(ctx context.Context, caller *model.User, id uint) error

	AddWorkExperience(ctx context.Context, caller *model.User, in WorkExperienceInput) (*model.WorkExperience, error)
	UpdateWorkExperience(ctx context.Context, caller *model.User, id uint, in WorkExperienceInput) (*model.WorkExperience, error)
	ListWorkExperience(ctx context.Context, caller *model.User) ([]model.WorkExperience, error)
	DeleteWorkExperience(ctx context.Context, caller *model.User, id uint) error

	AddEducation(ctx context.Context, caller *model.User, in EducationInput) (*model.Education, error)
	UpdateEducation(ctx context.Context, caller *model.User, id uint, in EducationInput) (*model.Education, error)
	ListEducation(ctx context.Context, caller *model.User) ([]model.Education, error)
	DeleteEducation(ctx context.Context, caller *model.User, id uint) error
}

type profileService struct {
	repos *repository.Repositories
}

// NewProfileService builds a ProfileService.
func NewProfileService(repos *repository.Repositories) ProfileService {
	return &profileService{repos: repos}
}

func (s *profileService) AddSkill(ctx context.Context, caller *model.User, in SkillInput) (*model.Skill, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.NewValidation("name", "This field is required.")
	}
	skill := &model.Skill{ApplicantID: caller.ID, Name: name, YearsOfExperience: in.YearsOfExperience}
	if err := s.repos.Profiles.CreateSkill(ctx, skill); err != nil {
		return nil, dbError("create skill", err)
	}
	return skill, nil
}

func (s *profileService) ListSkills(ctx context.Context, caller *model.User) ([]model.Skill, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	return s.repos.Profiles.ListSkills(ctx, caller.ID)
}

func (s *profileService) DeleteSkill(ctx context.Context, caller *model.User, id uint) error {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return err
	}
	return dbError("delete skill", notFound(s.repos.Profiles.DeleteSkill(ctx, caller.ID, id), ErrProfileItemNotFound))
}

func (s *profileService) AddWorkExperience(ctx context.Context, caller *model.User, in WorkExperienceInput) (*model.WorkExperience, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	work := &model.WorkExperience{ApplicantID: caller.ID}
	if err := applyWorkExperience(work, in); err != nil {
		return nil, err
	}
	if err := s.repos.Profiles.SaveWorkExperience(ctx, work); err != nil {
		return nil, dbError("create work experience", err)
	}
	return work, nil
}

func (s *profileService) UpdateWorkExperience(ctx context.Context, caller *model.User, id uint, in WorkExperienceInput) (*model.WorkExperience, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	work, err := s.repos.Profiles.FindWorkExperience(ctx, caller.ID, id)
	if err != nil {
		return nil, dbError("find work experience", notFound(err, ErrProfileItemNotFound))
	}
	if err := applyWorkExperience(work, in); err != nil {
		return nil, err
	}
	if err := s.repos.Profiles.SaveWorkExperience(ctx, work); err != nil {
		return nil, dbError("update work experience", err)
	}
	return work, nil
}

func (s *profileService) ListWorkExperience(ctx context.Context, caller *model.User) ([]model.WorkExperience, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	return s.repos.Profiles.ListWorkExperience(ctx, caller.ID)
}

func (s *profileService) DeleteWorkExperience(ctx context.Context, caller *model.User, id uint) error {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return err
	}
	return dbError("delete work experience", notFound(s.repos.Profiles.DeleteWorkExperience(ctx, caller.ID, id), ErrProfileItemNotFound))
}

func (s *profileService) AddEducation(ctx context.Context, caller *model.User, in EducationInput) (*model.Education, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	education := &model.Education{ApplicantID: caller.ID}
	if err := applyEducation(education, in); err != nil {
		return nil, err
	}
	if err := s.repos.Profiles.SaveEducation(ctx, education); err != nil {
		return nil, dbError("create education", err)
	}
	return education, nil
}

func (s *profileService) UpdateEducation(ctx context.Context, caller *model.User, id uint, in EducationInput) (*model.Education, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	education, err := s.repos.Profiles.FindEducation(ctx, caller.ID, id)
	if err != nil {
		return nil, dbError("find education", notFound(err, ErrProfileItemNotFound))
	}
	if err := applyEducation(education, in); err != nil {
		return nil, err
	}
	if err := s.repos.Profiles.SaveEducation(ctx, education); err != nil {
		return nil, dbError("update education", err)
	}
	return education, nil
}

func (s *profileService) ListEducation(ctx context.Context, caller *model.User) ([]model.Education, error) {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return nil, err
	}
	return s.repos.Profiles.ListEducation(ctx, caller.ID)
}

func (s *profileService) DeleteEducation(ctx context.Context, caller *model.User, id uint) error {
	if err := auth.Authorize(caller, auth.Applicant()); err != nil {
		return err
	}
	return dbError("delete education", notFound(s.repos.Profiles.DeleteEducation(ctx, caller.ID, id), ErrProfileItemNotFound))
}

func applyWorkExperience(work *model.WorkExperience, in WorkExperienceInput) error {
	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(in.JobTitle) == "" {
		verr.Add("job_title", "This field is required.")
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		verr.Add("company_name", "This field is required.")
	}
	start, end := parsePeriod(verr, in.StartDate, in.EndDate)
	if !verr.Empty() {
		return verr
	}

	work.JobTitle = strings.TrimSpace(in.JobTitle)
	work.CompanyName = strings.TrimSpace(in.CompanyName)
	work.StartDate = start
	work.EndDate = end
	work.CurrentlyWorking = in.CurrentlyWorking
	work.Description = in.Description
	return work.Validate()
}

func applyEducation(education *model.Education, in EducationInput) error {
	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(in.Institution) == "" {
		verr.Add("institution", "This field is required.")
	}
	if strings.TrimSpace(in.Degree) == "" {
		verr.Add("degree", "This field is required.")
	}
	start, end := parsePeriod(verr, in.StartDate, in.EndDate)
	var gpa decimal.NullDecimal
	if g := strings.TrimSpace(in.GPA); g != "" {
		d, err := decimal.NewFromString(g)
		if err != nil {
			verr.Add("gpa", "A valid number is required.")
		} else {
			gpa = decimal.NewNullDecimal(d.Round(2))
		}
	}
	if !verr.Empty() {
		return verr
	}

	education.Institution = strings.TrimSpace(in.Institution)
	education.Degree = strings.TrimSpace(in.Degree)
	education.FieldOfStudy = in.FieldOfStudy
	education.StartDate = start
	education.EndDate = end
	education.CurrentlyEnrolled = in.CurrentlyEnrolled
	education.GPA = gpa
	return education.Validate()
}

// parsePeriod reads a required start date and an optional end date,
// recording problems in verr.
func parsePeriod(verr *apperrors.ValidationError, startRaw, endRaw string) (datatypes.Date, *datatypes.Date) {
	var start datatypes.Date
	if strings.TrimSpace(startRaw) == "" {
		verr.Add("start_date", "This field is required.")
	} else if d, err := model.ParseDate(strings.TrimSpace(startRaw)); err != nil {
		verr.Add("start_date", "Date has wrong format. Use YYYY-MM-DD.")
	} else {
		start = d
	}

	if strings.TrimSpace(endRaw) == "" {
		return start, nil
	}
	d, err := model.ParseDate(strings.TrimSpace(endRaw))
	if err != nil {
		verr.Add("end_date", "Date has wrong format. Use YYYY-MM-DD.")
		return start, nil
	}
	return start, &d
}
