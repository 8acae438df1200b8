package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/service"
)

// JobHandler serves job postings.
type JobHandler struct {
	svc    service.JobService
	mapper *dto.Mapper
	log    *zap.Logger
	now    func() time.Time
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(svc service.JobService, mapper *dto.Mapper, log *zap.Logger) *JobHandler {
	return &JobHandler{svc: svc, mapper: mapper, log: log, now: time.Now}
}

// CreateJobRequest posts a job. Salary is a decimal string or number.
type CreateJobRequest struct {
	Title       string      `json:"job_title" validate:"required,max=100"`
	Description string      `json:"job_description"`
	Location    string      `json:"job_location" validate:"omitempty,max=100"`
	Salary      json.Number `json:"job_salary" validate:"required"`
}

// UpdateJobRequest is a partial job update.
type UpdateJobRequest struct {
	Title       *string      `json:"job_title" validate:"omitempty,max=100"`
	Description *string      `json:"job_description"`
	Location    *string      `json:"job_location" validate:"omitempty,max=100"`
	Salary      *json.Number `json:"job_salary"`
}

func (h *JobHandler) query(c echo.Context) service.JobQuery {
	return service.JobQuery{
		Title:      c.QueryParam("job_title"),
		Location:   c.QueryParam("job_location"),
		MinSalary:  c.QueryParam("min_salary"),
		DatePosted: c.QueryParam("date_posted"),
		Page:       c.QueryParam("page"),
		PageSize:   c.QueryParam("page_size"),
	}
}

// Search godoc
// @Summary Search jobs
// @Description Invalid filter values are ignored.
// @Tags jobs
// @Produce json
// @Param job_title query string false "Title contains"
// @Param job_location query string false "Location contains"
// @Param min_salary query number false "Minimum salary, inclusive"
// @Param date_posted query string false "Past 24 hours, Past 3 days, Past week, Past month, a number of days, or YYYY-MM-DD"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.JobListResponse
// @Router /jobs [get]
func (h *JobHandler) Search(c echo.Context) error {
	filter := service.ParseJobFilter(h.query(c), h.now())
	page, err := h.svc.Search(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.JobPage(page))
}

// Get godoc
// @Summary Job detail
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	job, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Job(job, nil))
}

// ListCompanyJobs godoc
// @Summary Jobs of the caller's company
// @Description Lists jobs posted by every recruiter the company has had, with application stats.
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Param job_title query string false "Title contains"
// @Param job_location query string false "Location contains"
// @Param min_salary query number false "Minimum salary, inclusive"
// @Param date_posted query string false "Past 24 hours, Past 3 days, Past week, Past month, a number of days, or YYYY-MM-DD"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.JobListResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recruiter/jobs [get]
func (h *JobHandler) ListCompanyJobs(c echo.Context) error {
	filter := service.ParseJobFilter(h.query(c), h.now())
	page, err := h.svc.ListCompanyJobs(c.Request().Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.JobPage(page))
}

// Create godoc
// @Summary Post a job
// @Tags recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recruiter/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req CreateJobRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	job, err := h.svc.Create(c.Request().Context(), middleware.CurrentUser(c), service.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary.String(),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, h.mapper.Job(job, nil))
}

// Update godoc
// @Summary Update a job
// @Tags recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recruiter/jobs/{id} [patch]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateJobRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	update := service.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.Salary != nil {
		salary := req.Salary.String()
		update.Salary = &salary
	}
	job, err := h.svc.Update(c.Request().Context(), middleware.CurrentUser(c), id, update)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Job(job, nil))
}

// Delete godoc
// @Summary Delete a job
// @Tags recruiter
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recruiter/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
