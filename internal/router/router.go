package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/config"
	"jobmatrix/internal/handler"
	"jobmatrix/internal/metrics"
	"jobmatrix/internal/middleware"
	"jobmatrix/internal/model"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Profile     *handler.ProfileHandler
	Company     *handler.CompanyHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Bookmark    *handler.BookmarkHandler
	Admin       *handler.AdminHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log *zap.Logger, authn *auth.Authenticator, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(metrics.Middleware())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.Storage.Backend == "local" {
		e.Static(cfg.Storage.MediaURL, cfg.Storage.MediaRoot)
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/password-reset", h.Auth.RequestPasswordReset)
	api.POST("/auth/password-reset/confirm", h.Auth.ConfirmPasswordReset)
	api.GET("/companies", h.Company.List)
	api.GET("/jobs", h.Job.Search)
	api.GET("/jobs/:id", h.Job.Get)

	// Secured routes
	secured := api.Group("", middleware.JWT(authn))
	secured.GET("/me", h.User.Me)
	secured.GET("/users", h.User.GetByEmail)
	secured.PATCH("/users/:id", h.User.Update)
	secured.DELETE("/users/:id", h.User.Delete)

	applicantOnly := middleware.RequireRole(model.RoleApplicant)
	applicant := secured.Group("/applicant", applicantOnly)
	applicant.PUT("/resume", h.User.UpdateResume)
	applicant.POST("/skills", h.Profile.AddSkill)
	applicant.GET("/skills", h.Profile.ListSkills)
	applicant.DELETE("/skills/:id", h.Profile.DeleteSkill)
	applicant.POST("/work-experience", h.Profile.AddWorkExperience)
	applicant.GET("/work-experience", h.Profile.ListWorkExperience)
	applicant.PUT("/work-experience/:id", h.Profile.UpdateWorkExperience)
	applicant.DELETE("/work-experience/:id", h.Profile.DeleteWorkExperience)
	applicant.POST("/education", h.Profile.AddEducation)
	applicant.GET("/education", h.Profile.ListEducation)
	applicant.PUT("/education/:id", h.Profile.UpdateEducation)
	applicant.DELETE("/education/:id", h.Profile.DeleteEducation)

	secured.POST("/jobs/:id/apply", h.Application.Apply, applicantOnly)
	secured.GET("/applications/mine", h.Application.ListMine, applicantOnly)
	secured.DELETE("/applications/:id", h.Application.Withdraw, applicantOnly)
	secured.POST("/bookmarks", h.Bookmark.Add, applicantOnly)
	secured.GET("/bookmarks", h.Bookmark.List, applicantOnly)
	secured.DELETE("/bookmarks/:id", h.Bookmark.Remove, applicantOnly)

	recruiter := secured.Group("/recruiter", middleware.RequireRole(model.RoleRecruiter))
	recruiter.GET("/applicants", h.User.SearchApplicants)
	recruiter.POST("/deactivate", h.User.Deactivate)
	recruiter.GET("/company", h.Company.Detail)
	recruiter.PATCH("/company", h.Company.Update)
	recruiter.GET("/jobs", h.Job.ListCompanyJobs)
	recruiter.POST("/jobs", h.Job.Create)
	recruiter.PATCH("/jobs/:id", h.Job.Update)
	recruiter.DELETE("/jobs/:id", h.Job.Delete)
	recruiter.GET("/jobs/:id/applications", h.Application.ListForJob)
	recruiter.PATCH("/applications/:id", h.Application.Review)

	admin := secured.Group("/admin", middleware.Require(auth.Admin()))
	admin.GET("/users", h.Admin.ListUsers)
	admin.GET("/stats", h.Admin.Stats)
	admin.GET("/broken-files", h.Admin.BrokenFiles)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports field errors under their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
