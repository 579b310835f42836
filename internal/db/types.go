package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is a row in the users table. PasswordHash stays inside the db and
// service layers; API responses use types.User.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Resume is a row in the resumes table. ResumeData is the opaque document
// JSON; SectionOrder and HiddenSections are stored alongside so a saved
// resume re-opens with its layout intact.
type Resume struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Name           string          `json:"name"`
	TemplateKey    string          `json:"template_key"`
	ResumeData     json.RawMessage `json:"resume_data"`
	SectionOrder   []string        `json:"section_order,omitempty"`
	HiddenSections []string        `json:"hidden_sections,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Draft is a row in the resume_drafts table: the unsaved in-progress resume,
// one per user, overwritten on every change.
type Draft struct {
	UserID         uuid.UUID       `json:"user_id"`
	TemplateKey    string          `json:"template_key"`
	ResumeData     json.RawMessage `json:"resume_data"`
	SectionOrder   []string        `json:"section_order,omitempty"`
	HiddenSections []string        `json:"hidden_sections,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Subscription is a row in the subscriptions table.
type Subscription struct {
	UserID    uuid.UUID `json:"user_id"`
	IsPremium bool      `json:"is_premium"`
	PlanType  string    `json:"plan_type,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSetting is a row in the site_settings table.
type SiteSetting struct {
	Key       string          `json:"setting_key"`
	Value     json.RawMessage `json:"setting_value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AdminStats aggregates the read-only counters shown on the admin dashboard.
type AdminStats struct {
	Users        int `json:"users"`
	PremiumUsers int `json:"premium_users"`
	Resumes      int `json:"resumes"`
	Drafts       int `json:"drafts"`
	Admins       int `json:"admins"`
}
