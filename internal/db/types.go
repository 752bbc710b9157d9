package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/types"
)

// User represents a user profile
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ResumeProfile is a stored parse result: the raw document text alongside the
// structured profile extracted from it.
type ResumeProfile struct {
	ID        uuid.UUID                `json:"id"`
	UserID    uuid.UUID                `json:"user_id"`
	Source    string                   `json:"source,omitempty"` // file path or URL the document came from
	RawText   string                   `json:"raw_text"`
	Profile   *types.StructuredProfile `json:"profile"`
	CreatedAt time.Time                `json:"created_at"`
}

// ResumeProfileSummary is a lightweight view for listing stored profiles
type ResumeProfileSummary struct {
	ID              uuid.UUID `json:"id"`
	Source          string    `json:"source,omitempty"`
	ExperienceCount int       `json:"experience_count"`
	SkillCount      int       `json:"skill_count"`
	CreatedAt       time.Time `json:"created_at"`
}
