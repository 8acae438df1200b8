package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/service"
)

// BookmarkHandler serves saved jobs.
type BookmarkHandler struct {
	svc    service.BookmarkService
	mapper *dto.Mapper
	log    *zap.Logger
}

// NewBookmarkHandler creates a BookmarkHandler.
func NewBookmarkHandler(svc service.BookmarkService, mapper *dto.Mapper, log *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, mapper: mapper, log: log}
}

// BookmarkRequest saves a job.
type BookmarkRequest struct {
	JobID uint `json:"job_id" validate:"required"`
}

// Add godoc
// @Summary Bookmark a job
// @Tags applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookmarkRequest true "Job to save"
// @Success 201 {object} dto.BookmarkResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /bookmarks [post]
func (h *BookmarkHandler) Add(c echo.Context) error {
	var req BookmarkRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	bookmark, err := h.svc.Add(c.Request().Context(), middleware.CurrentUser(c), req.JobID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, h.mapper.Bookmark(bookmark))
}

// List godoc
// @Summary The caller's bookmarks
// @Tags applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BookmarkResponse
// @Router /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	bookmarks, err := h.svc.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Bookmarks(bookmarks))
}

// Remove godoc
// @Summary Remove a bookmark
// @Tags applicant
// @Security BearerAuth
// @Param id path int true "Bookmark ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookmarks/{id} [delete]
func (h *BookmarkHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
