package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories bundles the entity repositories so a workflow can run several
// of them inside one transaction.
type Repositories struct {
	db *gorm.DB

	Users        UserRepository
	Companies    CompanyRepository
	Jobs         JobRepository
	Applications ApplicationRepository
	Bookmarks    BookmarkRepository
	Profiles     ProfileRepository
	ResetTokens  PasswordResetRepository
}

// New builds GORM-backed repositories sharing db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		Users:        NewUserRepository(db),
		Companies:    NewCompanyRepository(db),
		Jobs:         NewJobRepository(db),
		Applications: NewApplicationRepository(db),
		Bookmarks:    NewBookmarkRepository(db),
		Profiles:     NewProfileRepository(db),
		ResetTokens:  NewPasswordResetRepository(db),
	}
}

// WithTransaction executes fn with repositories bound to one database
// transaction. Any error returned by fn rolls every write back.
func (r *Repositories) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, New(tx))
	})
}

// Page selects one page of a listing. Zero values fall back to the caller's
// defaults through Normalize.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page into range.
func (p Page) Normalize(defaultSize, maxSize int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// forUpdate adds a row lock on dialects that support SELECT ... FOR UPDATE.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func likePattern(s string) string {
	return "%" + s + "%"
}
