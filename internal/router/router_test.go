package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/config"
	"jobmatrix/internal/dto"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/handler"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/router"
	"jobmatrix/internal/service"
	"jobmatrix/internal/storage"
	"jobmatrix/internal/testutil"
)

const adminKey = "admin-secret"

type apiServer struct {
	t *testing.T
	e *echo.Echo
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()
	log := zap.NewNop()
	repos := repository.New(testutil.NewDB(t))

	files, err := storage.NewLocal(afero.NewMemMapFs(), "/media", "http://localhost:8080", "/media")
	require.NoError(t, err)
	resolver := storage.NewResolver(files, "https://placeholder.test/150")

	jwtService, err := auth.NewJWTService("router-test-secret", "HS256", 7)
	require.NoError(t, err)
	authn := auth.NewAuthenticator(jwtService, repos.Users)

	authService := service.NewAuthService(repos, authn, files, nil, service.NewLogNotifier(log),
		service.AuthSettings{AdminSecretKey: adminKey, ResetTTL: 15 * time.Minute}, log)
	mapper := dto.NewMapper(resolver)

	e := echo.New()
	router.Register(e, &config.Config{}, log, authn, router.Handlers{
		Auth:        handler.NewAuthHandler(authService, mapper, log),
		User:        handler.NewUserHandler(service.NewUserService(repos, files, nil, log), mapper, log),
		Profile:     handler.NewProfileHandler(service.NewProfileService(repos), mapper, log),
		Company:     handler.NewCompanyHandler(service.NewCompanyService(repos, files, nil, time.Minute, log), mapper, log),
		Job:         handler.NewJobHandler(service.NewJobService(repos, nil, time.Minute, log), mapper, log),
		Application: handler.NewApplicationHandler(service.NewApplicationService(repos, log), mapper, log),
		Bookmark:    handler.NewBookmarkHandler(service.NewBookmarkService(repos), mapper, log),
		Admin:       handler.NewAdminHandler(service.NewAdminService(repos, resolver, log), mapper, log),
	})
	return &apiServer{t: t, e: e}
}

func (s *apiServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var payload string
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		payload = string(raw)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *apiServer) register(body map[string]interface{}) dto.UserResponse {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/register", "", body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	var res dto.RegisterResponse
	decode(s.t, rec, &res)
	return res.User
}

func (s *apiServer) login(email string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "password123"})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	var res dto.LoginResponse
	decode(s.t, rec, &res)
	require.NotEmpty(s.t, res.Token)
	return res.Token
}

func applicantBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      email,
		"password":   "password123",
		"role":       "APPLICANT",
	}
}

func recruiterBody(email, company string) map[string]interface{} {
	return map[string]interface{}{
		"first_name":           "Alice",
		"last_name":            "Founder",
		"email":                email,
		"password":             "password123",
		"role":                 "RECRUITER",
		"create_company":       true,
		"company_name":         company,
		"company_industry":     "Software",
		"company_secret_key":   "acme-key",
		"recruiter_start_date": "2024-01-01",
	}
}

func TestHealthz(t *testing.T) {
	s := newAPIServer(t)
	rec := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	s := newAPIServer(t)

	tests := []struct {
		name      string
		body      map[string]interface{}
		wantCode  int
		wantField string
	}{
		{name: "bad email", body: map[string]interface{}{"first_name": "A", "last_name": "B", "email": "nope", "password": "password123", "role": "APPLICANT"}, wantCode: http.StatusBadRequest, wantField: "email"},
		{name: "short password", body: map[string]interface{}{"first_name": "A", "last_name": "B", "email": "a@b.test", "password": "short", "role": "APPLICANT"}, wantCode: http.StatusBadRequest, wantField: "password"},
		{name: "password over 72 characters", body: map[string]interface{}{"first_name": "A", "last_name": "B", "email": "a@b.test", "password": strings.Repeat("p", 80), "role": "APPLICANT"}, wantCode: http.StatusBadRequest, wantField: "password"},
		{name: "unknown role", body: map[string]interface{}{"first_name": "A", "last_name": "B", "email": "a@b.test", "password": "password123", "role": "OWNER"}, wantCode: http.StatusBadRequest, wantField: "role"},
		{name: "wrong admin key", body: map[string]interface{}{"first_name": "A", "last_name": "B", "email": "a@b.test", "password": "password123", "role": "ADMIN", "admin_secret_key": "guess", "admin_ssn": "123-45-6789"}, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			var res apperrors.ErrorResponse
			decode(t, rec, &res)
			assert.NotEmpty(t, res.Code)
			if tt.wantField != "" {
				assert.Contains(t, res.Fields, tt.wantField)
			}
		})
	}

	s.register(applicantBody("ada@mail.test"))
	rec := s.do(http.MethodPost, "/api/auth/register", "", applicantBody("ADA@mail.test"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthentication(t *testing.T) {
	s := newAPIServer(t)
	user := s.register(applicantBody("ada@mail.test"))
	token := s.login("ada@mail.test")

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "valid token", token: token, wantCode: http.StatusOK},
		{name: "no token", token: "", wantCode: http.StatusUnauthorized},
		{name: "garbage token", token: "not.a.jwt", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/api/me", tt.token, nil)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}

	rec := s.do(http.MethodGet, "/api/me", token, nil)
	var profile dto.ProfileResponse
	decode(t, rec, &profile)
	assert.Equal(t, user.ID, profile.User.ID)
	assert.Empty(t, profile.User.ProfilePhoto)

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ada@mail.test", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	t.Run("deleted user token", func(t *testing.T) {
		rec := s.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = s.do(http.MethodGet, "/api/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoleGroups(t *testing.T) {
	s := newAPIServer(t)
	s.register(applicantBody("ada@mail.test"))
	s.register(recruiterBody("alice@acme.test", "Acme"))
	applicant := s.login("ada@mail.test")
	recruiter := s.login("alice@acme.test")

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
	}{
		{name: "applicant on recruiter route", method: http.MethodGet, path: "/api/recruiter/jobs", token: applicant, wantCode: http.StatusForbidden},
		{name: "recruiter on applicant route", method: http.MethodGet, path: "/api/applicant/skills", token: recruiter, wantCode: http.StatusForbidden},
		{name: "recruiter bookmarks", method: http.MethodGet, path: "/api/bookmarks", token: recruiter, wantCode: http.StatusForbidden},
		{name: "applicant on admin route", method: http.MethodGet, path: "/api/admin/stats", token: applicant, wantCode: http.StatusForbidden},
		{name: "applicant skills", method: http.MethodGet, path: "/api/applicant/skills", token: applicant, wantCode: http.StatusOK},
		{name: "recruiter company", method: http.MethodGet, path: "/api/recruiter/company", token: recruiter, wantCode: http.StatusOK},
		{name: "public companies", method: http.MethodGet, path: "/api/companies", wantCode: http.StatusOK},
		{name: "bad id", method: http.MethodGet, path: "/api/jobs/abc", wantCode: http.StatusBadRequest},
		{name: "missing job", method: http.MethodGet, path: "/api/jobs/9999", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestJobFlow(t *testing.T) {
	s := newAPIServer(t)
	s.register(applicantBody("ada@mail.test"))
	s.register(recruiterBody("alice@acme.test", "Acme"))
	applicant := s.login("ada@mail.test")
	recruiter := s.login("alice@acme.test")

	rec := s.do(http.MethodPost, "/api/recruiter/jobs", recruiter, map[string]interface{}{
		"job_title":    "Go Developer",
		"job_location": "Remote",
		"job_salary":   85000.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var job dto.JobResponse
	decode(t, rec, &job)
	assert.Equal(t, "Acme", job.Company.Name)

	rec = s.do(http.MethodPost, "/api/recruiter/jobs", recruiter, map[string]interface{}{"job_title": "Cheap", "job_salary": "-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/jobs?min_salary=85000.50&date_posted=past+week&job_title=go", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list dto.JobListResponse
	decode(t, rec, &list)
	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, 1, list.TotalPages)
	assert.Nil(t, list.Next)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), applicant, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = s.do(http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), applicant, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/api/recruiter/jobs", recruiter, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	require.Len(t, list.Results, 1)
	require.NotNil(t, list.Results[0].Stats)
	assert.Equal(t, int64(1), list.Results[0].Stats.Pending)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/recruiter/jobs/%d", job.ID), recruiter, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, fmt.Sprintf("/api/jobs/%d", job.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
