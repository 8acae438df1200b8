package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/service"
)

// ApplicationHandler serves job applications for both sides.
type ApplicationHandler struct {
	svc    service.ApplicationService
	mapper *dto.Mapper
	log    *zap.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc service.ApplicationService, mapper *dto.Mapper, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, mapper: mapper, log: log}
}

// ReviewApplicationRequest updates status and/or comment.
type ReviewApplicationRequest struct {
	Status           *string `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	RecruiterComment *string `json:"recruiter_comment"`
}

// Apply godoc
// @Summary Apply to a job
// @Tags applicant
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	jobID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	application, err := h.svc.Apply(c.Request().Context(), middleware.CurrentUser(c), jobID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, h.mapper.Application(application))
}

// ListMine godoc
// @Summary The caller's applications
// @Tags applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ApplicationResponse
// @Router /applications/mine [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	applications, err := h.svc.ListMine(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Applications(applications))
}

// Withdraw godoc
// @Summary Withdraw a pending application
// @Tags applicant
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Withdraw(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListForJob godoc
// @Summary Applications to a job of the caller's company
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recruiter/jobs/{id}/applications [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	jobID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	applications, err := h.svc.ListForJob(c.Request().Context(), middleware.CurrentUser(c), jobID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Applications(applications))
}

// Review godoc
// @Summary Review an application
// @Tags recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body ReviewApplicationRequest true "Status and comment"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recruiter/applications/{id} [patch]
func (h *ApplicationHandler) Review(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req ReviewApplicationRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	application, err := h.svc.Review(c.Request().Context(), middleware.CurrentUser(c), id, service.ApplicationReview{
		Status:  req.Status,
		Comment: req.RecruiterComment,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Application(application))
}
