package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/service"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	svc    service.UserService
	mapper *dto.Mapper
	log    *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc service.UserService, mapper *dto.Mapper, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, mapper: mapper, log: log}
}

// UpdateUserRequest is a partial user update. Absent fields are unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" form:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name" form:"last_name" validate:"omitempty,max=50"`
	Email     *string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Phone     *string `json:"phone" form:"phone" validate:"omitempty,max=15"`
	StreetNo  *string `json:"street_no" form:"street_no" validate:"omitempty,max=255"`
	City      *string `json:"city" form:"city" validate:"omitempty,max=50"`
	State     *string `json:"state" form:"state" validate:"omitempty,max=50"`
	ZipCode   *string `json:"zip_code" form:"zip_code" validate:"omitempty,max=10"`
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	profile, err := h.svc.GetProfile(c.Request().Context(), caller, caller.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Profile(c.Request().Context(), profile))
}

// GetByEmail godoc
// @Summary User profile by email
// @Description Without an email the caller's own profile is returned.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string false "User email"
// @Success 200 {object} dto.ProfileResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	profile, err := h.svc.GetProfileByEmail(c.Request().Context(), middleware.CurrentUser(c), c.QueryParam("email"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Profile(c.Request().Context(), profile))
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Param profile_photo formData file false "New profile photo"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	photo, closeFn, err := formUpload(c, "profile_photo")
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer closeFn()

	user, err := h.svc.Update(c.Request().Context(), middleware.CurrentUser(c), id, service.UserUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		StreetNo:     req.StreetNo,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		ProfilePhoto: photo,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.User(user))
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateResume godoc
// @Summary Replace the applicant's resume
// @Tags applicant
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume"
// @Success 200 {object} dto.ResumeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /applicant/resume [put]
func (h *UserHandler) UpdateResume(c echo.Context) error {
	up, closeFn, err := formUpload(c, "resume")
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer closeFn()

	applicant, err := h.svc.UpdateResume(c.Request().Context(), middleware.CurrentUser(c), up)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Resume(applicant))
}

// SearchApplicants godoc
// @Summary Search applicants
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Param email query string false "Email contains"
// @Param id query int false "Applicant ID"
// @Param first_name query string false "First name contains"
// @Param last_name query string false "Last name contains"
// @Success 200 {array} dto.ApplicantResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recruiter/applicants [get]
func (h *UserHandler) SearchApplicants(c echo.Context) error {
	filter := repository.ApplicantFilter{
		Email:     c.QueryParam("email"),
		FirstName: c.QueryParam("first_name"),
		LastName:  c.QueryParam("last_name"),
	}
	if id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64); err == nil {
		filter.ID = uint(id)
	}

	applicants, err := h.svc.SearchApplicants(c.Request().Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Applicants(applicants))
}

// Deactivate godoc
// @Summary End the caller's recruiter tenure
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.RecruiterResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recruiter/deactivate [post]
func (h *UserHandler) Deactivate(c echo.Context) error {
	recruiter, err := h.svc.DeactivateSelf(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Recruiter(recruiter))
}
