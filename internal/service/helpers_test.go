package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/storage"
	"jobmatrix/internal/testutil"
)

const (
	testAdminKey = "admin-secret"
	testPassword = "password123"
)

type sentReset struct {
	email string
	code  string
}

type captureNotifier struct {
	mu   sync.Mutex
	sent []sentReset
}

func (n *captureNotifier) SendPasswordReset(_ context.Context, email, code string, _ time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentReset{email: email, code: code})
	return nil
}

func (n *captureNotifier) last() sentReset {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

// memoryCache is an in-process cache.Store that remembers evictions.
type memoryCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dst interface{}) bool {
	c.mu.Lock()
	raw, ok := c.values[key]
	c.mu.Unlock()
	return ok && json.Unmarshal(raw, dst) == nil
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.values, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}

type testEnv struct {
	t        *testing.T
	ctx      context.Context
	repos    *repository.Repositories
	files    *storage.Local
	resolver *storage.Resolver
	notifier *captureNotifier
	auth     AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repos := repository.New(testutil.NewDB(t))

	files, err := storage.NewLocal(afero.NewMemMapFs(), "/media", "http://localhost:8080", "/media")
	require.NoError(t, err)

	jwtService, err := auth.NewJWTService("test-secret", "HS256", 7)
	require.NoError(t, err)

	notifier := &captureNotifier{}
	authService := NewAuthService(
		repos,
		auth.NewAuthenticator(jwtService, repos.Users),
		files,
		nil,
		notifier,
		AuthSettings{AdminSecretKey: testAdminKey, ResetTTL: 15 * time.Minute},
		zap.NewNop(),
	)

	return &testEnv{
		t:        t,
		ctx:      context.Background(),
		repos:    repos,
		files:    files,
		resolver: storage.NewResolver(files, "https://placeholder.test/150"),
		notifier: notifier,
		auth:     authService,
	}
}

func (e *testEnv) register(in RegisterInput) *model.User {
	e.t.Helper()
	user, err := e.auth.Register(e.ctx, in)
	require.NoError(e.t, err)
	return user
}

// caller reloads id the way the JWT middleware does.
func (e *testEnv) caller(id uint) *model.User {
	e.t.Helper()
	user, err := e.repos.Users.FindForAuth(e.ctx, id)
	require.NoError(e.t, err)
	return user
}

func (e *testEnv) userCount() int64 {
	e.t.Helper()
	_, total, err := e.repos.Users.List(e.ctx, repository.UserFilter{Page: repository.Page{Number: 1, Size: 1}})
	require.NoError(e.t, err)
	return total
}

func applicantInput(email string) RegisterInput {
	return RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  testPassword,
		Role:      model.RoleApplicant,
	}
}

func adminInput(email, ssn string) RegisterInput {
	return RegisterInput{
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          email,
		Password:       testPassword,
		Role:           model.RoleAdmin,
		AdminSecretKey: testAdminKey,
		AdminSSN:       ssn,
	}
}

func foundCompanyInput(email, company, secret, start string) RegisterInput {
	return RegisterInput{
		FirstName:          "Alice",
		LastName:           "Founder",
		Email:              email,
		Password:           testPassword,
		Role:               model.RoleRecruiter,
		CreateCompany:      true,
		CompanyName:        company,
		CompanyIndustry:    "Software",
		CompanySecretKey:   secret,
		RecruiterStartDate: start,
	}
}

func joinCompanyInput(email string, companyID uint, secret, start string) RegisterInput {
	return RegisterInput{
		FirstName:          "Bob",
		LastName:           "Joiner",
		Email:              email,
		Password:           testPassword,
		Role:               model.RoleRecruiter,
		CompanyID:          companyID,
		CompanySecretKey:   secret,
		RecruiterStartDate: start,
	}
}

func upload(name, body string) *Upload {
	return &Upload{Filename: name, ContentType: "application/octet-stream", Size: int64(len(body)), Reader: strings.NewReader(body)}
}

func strPtr(s string) *string { return &s }
