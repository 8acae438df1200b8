package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/service"
)

// CompanyHandler serves the company directory and the recruiter's company page.
type CompanyHandler struct {
	svc    service.CompanyService
	mapper *dto.Mapper
	log    *zap.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(svc service.CompanyService, mapper *dto.Mapper, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, mapper: mapper, log: log}
}

// UpdateCompanyRequest is a partial company update. new_secret_key rotates
// the join secret and needs current_secret_key.
type UpdateCompanyRequest struct {
	Name             *string `json:"name" form:"name" validate:"omitempty,max=100"`
	Industry         *string `json:"industry" form:"industry" validate:"omitempty,max=100"`
	Description      *string `json:"description" form:"description"`
	CurrentSecretKey string  `json:"current_secret_key" form:"current_secret_key"`
	NewSecretKey     string  `json:"new_secret_key" form:"new_secret_key" validate:"omitempty,max=72"`
}

// List godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Router /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Companies(companies))
}

// Detail godoc
// @Summary The caller's company with its recruiters
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CompanyDetailResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recruiter/company [get]
func (h *CompanyHandler) Detail(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	detail, err := h.svc.Detail(c.Request().Context(), caller)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.CompanyDetail(detail, caller.ID))
}

// Update godoc
// @Summary Update the caller's company
// @Tags recruiter
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateCompanyRequest true "Fields to change"
// @Param company_image formData file false "New company image"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /recruiter/company [patch]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req UpdateCompanyRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	image, closeFn, err := formUpload(c, "company_image")
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer closeFn()

	company, err := h.svc.Update(c.Request().Context(), middleware.CurrentUser(c), service.CompanyUpdate{
		Name:             req.Name,
		Industry:         req.Industry,
		Description:      req.Description,
		Image:            image,
		CurrentSecretKey: req.CurrentSecretKey,
		NewSecretKey:     req.NewSecretKey,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Company(company))
}
