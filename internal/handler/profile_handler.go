package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/service"
)

// ProfileHandler serves the applicant's skills, work experience and education.
type ProfileHandler struct {
	svc    service.ProfileService
	mapper *dto.Mapper
	log    *zap.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc service.ProfileService, mapper *dto.Mapper, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, mapper: mapper, log: log}
}

// SkillRequest creates a skill.
type SkillRequest struct {
	Name              string `json:"name" validate:"required,max=50"`
	YearsOfExperience int    `json:"years_of_experience" validate:"gte=0"`
}

// WorkExperienceRequest creates or replaces a work experience entry.
type WorkExperienceRequest struct {
	JobTitle         string `json:"job_title" validate:"required,max=100"`
	CompanyName      string `json:"company_name" validate:"required,max=100"`
	StartDate        string `json:"start_date" validate:"required"`
	EndDate          string `json:"end_date"`
	CurrentlyWorking bool   `json:"currently_working"`
	Description      string `json:"description"`
}

// EducationRequest creates or replaces an education entry. GPA is a decimal
// string.
type EducationRequest struct {
	Institution       string `json:"institution" validate:"required,max=100"`
	Degree            string `json:"degree" validate:"required,max=100"`
	FieldOfStudy      string `json:"field_of_study" validate:"omitempty,max=100"`
	StartDate         string `json:"start_date" validate:"required"`
	EndDate           string `json:"end_date"`
	CurrentlyEnrolled bool   `json:"currently_enrolled"`
	GPA               string `json:"gpa"`
}

// AddSkill godoc
// @Summary Add a skill
// @Tags applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SkillRequest true "Skill"
// @Success 201 {object} dto.SkillResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /applicant/skills [post]
func (h *ProfileHandler) AddSkill(c echo.Context) error {
	var req SkillRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	skill, err := h.svc.AddSkill(c.Request().Context(), middleware.CurrentUser(c), service.SkillInput{
		Name:              req.Name,
		YearsOfExperience: req.YearsOfExperience,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, h.mapper.Skill(skill))
}

// ListSkills godoc
// @Summary List the caller's skills
// @Tags applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SkillResponse
// @Router /applicant/skills [get]
func (h *ProfileHandler) ListSkills(c echo.Context) error {
	skills, err := h.svc.ListSkills(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Skills(skills))
}

// DeleteSkill godoc
// @Summary Delete a skill
// @Tags applicant
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicant/skills/{id} [delete]
func (h *ProfileHandler) DeleteSkill(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteSkill(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddWorkExperience godoc
// @Summary Add a work experience entry
// @Tags applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WorkExperienceRequest true "Work experience"
// @Success 201 {object} dto.WorkExperienceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /applicant/work-experience [post]
func (h *ProfileHandler) AddWorkExperience(c echo.Context) error {
	var req WorkExperienceRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	work, err := h.svc.AddWorkExperience(c.Request().Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, h.mapper.WorkExperience(work))
}

// UpdateWorkExperience godoc
// @Summary Replace a work experience entry
// @Tags applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body WorkExperienceRequest true "Work experience"
// @Success 200 {object} dto.WorkExperienceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicant/work-experience/{id} [put]
func (h *ProfileHandler) UpdateWorkExperience(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req WorkExperienceRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	work, err := h.svc.UpdateWorkExperience(c.Request().Context(), middleware.CurrentUser(c), id, req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.WorkExperience(work))
}

// ListWorkExperience godoc
// @Summary List the caller's work experience
// @Tags applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.WorkExperienceResponse
// @Router /applicant/work-experience [get]
func (h *ProfileHandler) ListWorkExperience(c echo.Context) error {
	items, err := h.svc.ListWorkExperience(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.WorkExperiences(items))
}

// DeleteWorkExperience godoc
// @Summary Delete a work experience entry
// @Tags applicant
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicant/work-experience/{id} [delete]
func (h *ProfileHandler) DeleteWorkExperience(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteWorkExperience(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EducationRequest true "Education"
// @Success 201 {object} dto.EducationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /applicant/education [post]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	var req EducationRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	education, err := h.svc.AddEducation(c.Request().Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, h.mapper.Education(education))
}

// UpdateEducation godoc
// @Summary Replace an education entry
// @Tags applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body EducationRequest true "Education"
// @Success 200 {object} dto.EducationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicant/education/{id} [put]
func (h *ProfileHandler) UpdateEducation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req EducationRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	education, err := h.svc.UpdateEducation(c.Request().Context(), middleware.CurrentUser(c), id, req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Education(education))
}

// ListEducation godoc
// @Summary List the caller's education
// @Tags applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EducationResponse
// @Router /applicant/education [get]
func (h *ProfileHandler) ListEducation(c echo.Context) error {
	items, err := h.svc.ListEducation(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Educations(items))
}

// DeleteEducation godoc
// @Summary Delete an education entry
// @Tags applicant
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicant/education/{id} [delete]
func (h *ProfileHandler) DeleteEducation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEducation(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r WorkExperienceRequest) input() service.WorkExperienceInput {
	return service.WorkExperienceInput{
		JobTitle:         r.JobTitle,
		CompanyName:      r.CompanyName,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		CurrentlyWorking: r.CurrentlyWorking,
		Description:      r.Description,
	}
}

func (r EducationRequest) input() service.EducationInput {
	return service.EducationInput{
		Institution:       r.Institution,
		Degree:            r.Degree,
		FieldOfStudy:      r.FieldOfStudy,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		CurrentlyEnrolled: r.CurrentlyEnrolled,
		GPA:               r.GPA,
	}
}
