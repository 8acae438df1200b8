package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/cache"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/metrics"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/storage"
)

// RegisterInput carries the user fields plus the role-specific fields of a
// registration form.
type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	Phone        string
	StreetNo     string
	City         string
	State        string
	ZipCode      string
	Role         model.Role
	ProfilePhoto *Upload

	Resume *Upload

	CreateCompany      bool
	CompanyName        string
	CompanyIndustry    string
	CompanyDescription string
	CompanyImage       *Upload
	CompanyID          uint
	CompanySecretKey   string
	RecruiterStartDate string

	AdminSecretKey string
	AdminSSN       string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

// AuthSettings holds the auth workflow configuration.
type AuthSettings struct {
	AdminSecretKey string
	ResetTTL       time.Duration
}

// AuthService handles registration, login and password resets.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	repos    *repository.Repositories
	authn    *auth.Authenticator
	files    storage.Backend
	cache    cache.Store
	notifier Notifier
	settings AuthSettings
	log      *zap.Logger
	now      func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	repos *repository.Repositories,
	authn *auth.Authenticator,
	files storage.Backend,
	cacheClient cache.Store,
	notifier Notifier,
	settings AuthSettings,
	log *zap.Logger,
) AuthService {
	return &authService{
		repos:    repos,
		authn:    authn,
		files:    files,
		cache:    cacheOrNone(cacheClient),
		notifier: notifier,
		settings: settings,
		log:      log,
		now:      time.Now,
	}
}

// Register creates the user and its role extension in one transaction.
// Uploaded files are stored first and are not removed if the transaction
// fails.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if verr := validateRegistration(in); !verr.Empty() {
		return nil, verr
	}

	var startDate time.Time
	if in.Role == model.RoleRecruiter {
		d, err := model.ParseDate(in.RecruiterStartDate)
		if err != nil {
			return nil, apperrors.NewValidation("recruiter_start_date", "Invalid recruiter_start_date format. Use YYYY-MM-DD.")
		}
		startDate = time.Time(d)
	}

	if in.Role == model.RoleAdmin {
		if s.settings.AdminSecretKey == "" ||
			subtle.ConstantTimeCompare([]byte(in.AdminSecretKey), []byte(s.settings.AdminSecretKey)) != 1 {
			return nil, apperrors.ErrInvalidAdminKey
		}
	}

	exists, err := s.repos.Users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	passwordHash, err := hashSecret("password", in.Password)
	if err != nil {
		return nil, err
	}

	photo, err := storeUpload(ctx, s.files, storage.KindProfilePhoto, in.ProfilePhoto)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        in.Email,
		PasswordHash: passwordHash,
		Phone:        in.Phone,
		StreetNo:     in.StreetNo,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Role:         in.Role,
		ProfilePhoto: photo,
	}

	var register func(ctx context.Context, tx *repository.Repositories) error
	switch in.Role {
	case model.RoleApplicant:
		resume, err := storeUpload(ctx, s.files, storage.KindResume, in.Resume)
		if err != nil {
			return nil, err
		}
		register = func(ctx context.Context, tx *repository.Repositories) error {
			return tx.Users.CreateApplicant(ctx, &model.Applicant{UserID: user.ID, Resume: resume})
		}
	case model.RoleAdmin:
		register = func(ctx context.Context, tx *repository.Repositories) error {
			taken, err := tx.Users.SSNExists(ctx, in.AdminSSN)
			if err != nil {
				return err
			}
			if taken {
				return ErrSSNTaken
			}
			return tx.Users.CreateAdmin(ctx, &model.Admin{UserID: user.ID, SSN: in.AdminSSN})
		}
	case model.RoleRecruiter:
		if in.CreateCompany {
			image, err := storeUpload(ctx, s.files, storage.KindCompanyImage, in.CompanyImage)
			if err != nil {
				return nil, err
			}
			secretHash, err := hashSecret("company_secret_key", in.CompanySecretKey)
			if err != nil {
				return nil, err
			}
			company := &model.Company{
				Name:          strings.TrimSpace(in.CompanyName),
				Industry:      in.CompanyIndustry,
				Description:   in.CompanyDescription,
				Image:         image,
				SecretKeyHash: secretHash,
			}
			register = func(ctx context.Context, tx *repository.Repositories) error {
				return s.createCompanyRecruiter(ctx, tx, user, company, startDate)
			}
		} else {
			register = func(ctx context.Context, tx *repository.Repositories) error {
				return s.joinCompany(ctx, tx, user, in.CompanyID, in.CompanySecretKey, startDate)
			}
		}
	}

	err = s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		if err := tx.Users.Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrEmailTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return register(ctx, tx)
	})
	if err != nil {
		return nil, dbError("register", err)
	}

	if in.Role == model.RoleRecruiter && in.CreateCompany {
		_ = s.cache.Delete(ctx, cache.CompaniesKey())
	}
	metrics.ObserveRegistration(string(in.Role))
	s.log.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

func (s *authService) createCompanyRecruiter(ctx context.Context, tx *repository.Repositories, user *model.User, company *model.Company, start time.Time) error {
	taken, err := tx.Companies.NameExists(ctx, company.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrCompanyNameTaken
	}
	if err := tx.Companies.Create(ctx, company); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyNameTaken
		}
		return fmt.Errorf("create company: %w", err)
	}
	return tx.Users.CreateRecruiter(ctx, &model.Recruiter{
		UserID:    user.ID,
		CompanyID: company.ID,
		IsActive:  true,
		StartDate: model.NewDate(start),
	})
}

// joinCompany admits user into an existing company and hands the active
// recruiter role over to them. The previous active recruiter's tenure ends
// the day before the new one starts.
func (s *authService) joinCompany(ctx context.Context, tx *repository.Repositories, user *model.User, companyID uint, secret string, start time.Time) error {
	company, err := tx.Companies.FindByIDForUpdate(ctx, companyID)
	if err != nil {
		return notFound(err, ErrCompanyNotFound)
	}
	if !secretMatches(company.SecretKeyHash, secret) {
		return apperrors.ErrInvalidCompanySecret
	}

	active, err := tx.Companies.FindActiveRecruiters(ctx, company.ID)
	if err != nil {
		return fmt.Errorf("find active recruiters: %w", err)
	}
	end := start.AddDate(0, 0, -1)
	for i := range active {
		previous := &active[i]
		previous.Deactivate(end)
		if err := tx.Users.UpdateRecruiter(ctx, previous); err != nil {
			return fmt.Errorf("deactivate recruiter %d: %w", previous.UserID, err)
		}
		s.log.Info("recruiter handed over",
			zap.Uint("company_id", company.ID),
			zap.Uint("previous_recruiter_id", previous.UserID),
			zap.Uint("new_recruiter_id", user.ID),
		)
	}

	return tx.Users.CreateRecruiter(ctx, &model.Recruiter{
		UserID:    user.ID,
		CompanyID: company.ID,
		IsActive:  true,
		StartDate: model.NewDate(start),
	})
}

// Login checks credentials and issues a token. Unknown emails and wrong
// passwords are reported differently.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		verr := &apperrors.ValidationError{}
		if strings.TrimSpace(email) == "" {
			verr.Add("email", "Email is required")
		}
		if password == "" {
			verr.Add("password", "Password is required")
		}
		return nil, verr
	}

	user, err := s.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.ObserveLogin("unknown_email")
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.ObserveLogin("bad_password")
		return nil, apperrors.ErrIncorrectPassword
	}

	if user.Role == model.RoleRecruiter {
		recruiter, err := s.repos.Users.FindRecruiter(ctx, user.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecruiterProfileMissing
			}
			return nil, fmt.Errorf("find recruiter: %w", err)
		}
		if !recruiter.IsActive {
			metrics.ObserveLogin("inactive_recruiter")
			return nil, apperrors.ErrRecruiterInactive
		}
		user.Recruiter = recruiter
	}

	token, expiresAt, err := s.authn.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.ObserveLogin("success")
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// RequestPasswordReset stores a fresh six digit code for email and hands it
// to the notifier.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.repos.Users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmailNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	code, err := resetCode()
	if err != nil {
		return err
	}
	token := &model.PasswordResetToken{
		Email:     email,
		Token:     code,
		ExpiresAt: s.now().Add(s.settings.ResetTTL),
	}
	if err := s.repos.ResetTokens.Create(ctx, token); err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}
	if err := s.notifier.SendPasswordReset(ctx, email, code, token.ExpiresAt); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}
	return nil
}

// ResetPassword sets a new password if code is the latest unexpired code for
// email. Every code for the email is consumed.
func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.NewValidation("new_password", fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	if len(newPassword) > maxSecretBytes {
		return apperrors.NewValidation("new_password", tooLongMessage)
	}

	token, err := s.repos.ResetTokens.FindLatest(ctx, email, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("find reset token: %w", err)
	}
	if token.IsExpired(s.now()) {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := hashSecret("new_password", newPassword)
	if err != nil {
		return err
	}

	return s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		user, err := tx.Users.FindByEmail(ctx, token.Email)
		if err != nil {
			return notFound(err, apperrors.ErrEmailNotFound)
		}
		user.PasswordHash = hash
		if err := tx.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		return tx.ResetTokens.DeleteByEmail(ctx, token.Email)
	})
}

func validateRegistration(in RegisterInput) *apperrors.ValidationError {
	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(in.FirstName) == "" {
		verr.Add("first_name", "This field is required.")
	}
	if strings.TrimSpace(in.LastName) == "" {
		verr.Add("last_name", "This field is required.")
	}
	if in.Email == "" {
		verr.Add("email", "This field is required.")
	}
	switch {
	case len(in.Password) < minPasswordLength:
		verr.Add("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	case len(in.Password) > maxSecretBytes:
		verr.Add("password", tooLongMessage)
	}
	if !in.Role.Valid() {
		verr.Add("role", "Role must be one of ADMIN, APPLICANT, RECRUITER.")
		return verr
	}

	switch in.Role {
	case model.RoleRecruiter:
		if in.RecruiterStartDate == "" {
			verr.Add("recruiter_start_date", "This field is required.")
		}
		if in.CreateCompany {
			if strings.TrimSpace(in.CompanyName) == "" {
				verr.Add("company_name", "This field is required.")
			}
			switch {
			case in.CompanySecretKey == "":
				verr.Add("company_secret_key", "This field is required.")
			case len(in.CompanySecretKey) > maxSecretBytes:
				verr.Add("company_secret_key", tooLongMessage)
			}
		} else if in.CompanyID == 0 || in.CompanySecretKey == "" {
			verr.Add("company", "Company ID and Secret Key are required!")
		}
	case model.RoleAdmin:
		if strings.TrimSpace(in.AdminSSN) == "" {
			verr.Add("admin_ssn", "This field is required.")
		}
	}
	return verr
}

// resetCode returns six random decimal digits.
func resetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
