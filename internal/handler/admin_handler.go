package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/service"
)

// AdminHandler serves admin reports.
type AdminHandler struct {
	svc    service.AdminService
	mapper *dto.Mapper
	log    *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc service.AdminService, mapper *dto.Mapper, log *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, mapper: mapper, log: log}
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param role query string false "ADMIN, APPLICANT or RECRUITER"
// @Param search query string false "Name contains"
// @Success 200 {object} dto.UserListResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	filter := repository.UserFilter{
		Search: c.QueryParam("search"),
		Page:   repository.Page{Number: page},
	}
	if role := model.Role(c.QueryParam("role")); role.Valid() {
		filter.Role = role
	}

	users, err := h.svc.ListUsers(c.Request().Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.UserPage(users))
}

// Stats godoc
// @Summary Platform statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Stats(stats))
}

// BrokenFiles godoc
// @Summary Stored file references with no backing object
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BrokenFileResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/broken-files [get]
func (h *AdminHandler) BrokenFiles(c echo.Context) error {
	files, err := h.svc.BrokenFiles(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.BrokenFiles(files))
}
