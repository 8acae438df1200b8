package model

import "time"

// PasswordResetToken is a short-lived one-time code sent to an email address.
type PasswordResetToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:254;not null;index"`
	Token     string    `json:"-" gorm:"size:6;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"<-:create"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// IsExpired reports whether the token is past its expiry at now.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Admin{},
		&Applicant{},
		&Company{},
		&Recruiter{},
		&Job{},
		&Application{},
		&Bookmark{},
		&WorkExperience{},
		&Education{},
		&Skill{},
		&PasswordResetToken{},
	}
}
