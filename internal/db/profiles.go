package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-parser/internal/types"
)

// ProfileCreateInput holds the fields for storing one parse result
type ProfileCreateInput struct {
	UserID  uuid.UUID
	Source  string
	RawText string
	Profile *types.StructuredProfile
}

// SaveProfile stores a parsed resume profile as JSONB alongside its raw text
// and returns the new record's ID
func (db *DB) SaveProfile(ctx context.Context, input *ProfileCreateInput) (uuid.UUID, error) {
	if input.Profile == nil {
		return uuid.Nil, fmt.Errorf("profile is required")
	}

	profileJSON, err := json.Marshal(input.Profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_profiles (user_id, source, raw_text, profile)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		input.UserID, input.Source, input.RawText, profileJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// GetProfileByID retrieves a stored profile. Returns nil without error when
// no record exists.
func (db *DB) GetProfileByID(ctx context.Context, id uuid.UUID) (*ResumeProfile, error) {
	var rp ResumeProfile
	var profileJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(source, ''), raw_text, profile, created_at
		 FROM resume_profiles WHERE id = $1`,
		id,
	).Scan(&rp.ID, &rp.UserID, &rp.Source, &rp.RawText, &profileJSON, &rp.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.StructuredProfile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored profile: %w", err)
	}
	profile.EnsureLists()
	rp.Profile = &profile

	return &rp, nil
}

// ListProfilesByUser retrieves summaries of a user's stored profiles, newest
// first
func (db *DB) ListProfilesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ResumeProfileSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(source, ''),
		        jsonb_array_length(profile->'experience'),
		        jsonb_array_length(profile->'skills'),
		        created_at
		 FROM resume_profiles WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeProfileSummary
	for rows.Next() {
		var s ResumeProfileSummary
		if err := rows.Scan(&s.ID, &s.Source, &s.ExperienceCount, &s.SkillCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteProfile deletes a stored profile
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resume_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}
