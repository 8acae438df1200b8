package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/internal/dto"
	"jobmatrix/internal/model"
	"jobmatrix/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	mapper      *dto.Mapper
	log         *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, mapper *dto.Mapper, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, mapper: mapper, log: log}
}

// RegisterRequest represents a registration form. Role-specific fields are
// checked by the registration workflow.
type RegisterRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,max=50"`
	Email     string `json:"email" form:"email" validate:"required,email,max=254"`
	Password  string `json:"password" form:"password" validate:"required,min=8,max=72"`
	Phone     string `json:"phone" form:"phone" validate:"omitempty,max=15"`
	StreetNo  string `json:"street_no" form:"street_no" validate:"omitempty,max=255"`
	City      string `json:"city" form:"city" validate:"omitempty,max=50"`
	State     string `json:"state" form:"state" validate:"omitempty,max=50"`
	ZipCode   string `json:"zip_code" form:"zip_code" validate:"omitempty,max=10"`
	Role      string `json:"role" form:"role" validate:"required,oneof=ADMIN APPLICANT RECRUITER"`

	CreateCompany      bool   `json:"create_company" form:"create_company"`
	CompanyName        string `json:"company_name" form:"company_name" validate:"omitempty,max=100"`
	CompanyIndustry    string `json:"company_industry" form:"company_industry" validate:"omitempty,max=100"`
	CompanyDescription string `json:"company_description" form:"company_description"`
	CompanyID          uint   `json:"company_id" form:"company_id"`
	CompanySecretKey   string `json:"company_secret_key" form:"company_secret_key" validate:"omitempty,max=72"`
	RecruiterStartDate string `json:"recruiter_start_date" form:"recruiter_start_date"`

	AdminSecretKey string `json:"admin_secret_key" form:"admin_secret_key"`
	AdminSSN       string `json:"admin_ssn" form:"admin_ssn" validate:"omitempty,max=11"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// PasswordResetRequest asks for a reset code.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest sets a new password with a reset code.
type PasswordResetConfirmRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user and its role record. Recruiters either create a company or join one with its secret key.
// @Tags auth
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Param profile_photo formData file false "Profile photo"
// @Param resume formData file false "Resume (applicants)"
// @Param company_image formData file false "Company image (new companies)"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}

	in := service.RegisterInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Password:           req.Password,
		Phone:              req.Phone,
		StreetNo:           req.StreetNo,
		City:               req.City,
		State:              req.State,
		ZipCode:            req.ZipCode,
		Role:               model.Role(req.Role),
		CreateCompany:      req.CreateCompany,
		CompanyName:        req.CompanyName,
		CompanyIndustry:    req.CompanyIndustry,
		CompanyDescription: req.CompanyDescription,
		CompanyID:          req.CompanyID,
		CompanySecretKey:   req.CompanySecretKey,
		RecruiterStartDate: req.RecruiterStartDate,
		AdminSecretKey:     req.AdminSecretKey,
		AdminSSN:           req.AdminSSN,
	}

	for field, dst := range map[string]**service.Upload{
		"profile_photo": &in.ProfilePhoto,
		"resume":        &in.Resume,
		"company_image": &in.CompanyImage,
	} {
		up, closeFn, err := formUpload(c, field)
		if err != nil {
			return respondError(c, h.log, err)
		}
		defer closeFn()
		*dst = up
	}

	user, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    h.mapper.User(user),
	})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.mapper.Login(res))
}

// RequestPasswordReset godoc
// @Summary Request a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password reset code sent"})
}

// ConfirmPasswordReset godoc
// @Summary Set a new password with a reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordResetConfirmRequest true "Reset code and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req PasswordResetConfirmRequest
	if err := bindAndValidate(c, h.log, &req); err != nil {
		return err
	}
	if err := h.authService.ResetPassword(c.Request().Context(), req.Email, req.Token, req.NewPassword); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset"})
}
