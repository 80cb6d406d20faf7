// Package accounts provides users, authentication and the role-consistency
// rules that keep the staff flags coherent.
package accounts

import (
	"context"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
)

// User represents a system user: a patient by default, optionally a worker
// with staff sub-roles.
type User struct {
	ID           id.ID  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	FirstName    string `db:"first_name" json:"firstName,omitempty"`
	LastName     string `db:"last_name" json:"lastName,omitempty"`

	// PhoneNumber is optional; when set it must match the accepted pattern
	PhoneNumber *string `db:"phone_number" json:"phoneNumber,omitempty"`

	// Role flags. Staff flags are constrained by ValidateRoles.
	IsPatient          bool `db:"is_patient" json:"isPatient"`
	IsWorker           bool `db:"is_worker" json:"isWorker"`
	IsDentist          bool `db:"is_dentist" json:"isDentist"`
	IsDentistAssistant bool `db:"is_dentist_assistant" json:"isDentistAssistant"`
	IsDentistStaff     bool `db:"is_dentist_staff" json:"isDentistStaff"`
	IsManagementStaff  bool `db:"is_management_staff" json:"isManagementStaff"`
	IsHR               bool `db:"is_hr" json:"isHR"`
	IsFinancial        bool `db:"is_financial" json:"isFinancial"`
	IsDev              bool `db:"is_dev" json:"isDev"`

	IsActive       bool    `db:"is_active" json:"isActive"`
	AdditionalInfo *string `db:"additional_info" json:"additionalInfo,omitempty"`

	LastLoginAt *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	Version     int        `db:"version" json:"version"`
}

// NewUser creates a new active patient user.
func NewUser(email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		Email:        email,
		PasswordHash: passwordHash,
		IsPatient:    true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

// Validate validates user data, including role consistency.
// Runs on every save.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewFieldValidation("email", "email is required")
	}

	if violations := ValidateRoles(u); len(violations) > 0 {
		return apperror.NewFieldViolations(violations)
	}

	return nil
}

// CanLogin checks if user can login.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	return nil
}

// RecordSuccessfulLogin stamps the last login time.
func (u *User) RecordSuccessfulLogin() {
	now := time.Now().UTC()
	u.LastLoginAt = &now
}

// FullName returns user's full name, or the email if no name is set.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// Roles returns the user's role names for token claims.
func (u *User) Roles() []string {
	var roles []string
	if u.IsPatient {
		roles = append(roles, "patient")
	}
	if u.IsWorker {
		roles = append(roles, "worker")
	}
	if u.IsDentist {
		roles = append(roles, "dentist")
	}
	if u.IsDentistAssistant {
		roles = append(roles, "dentist_assistant")
	}
	if u.IsDentistStaff {
		roles = append(roles, "dentist_staff")
	}
	if u.IsManagementStaff {
		roles = append(roles, "management_staff")
	}
	if u.IsHR {
		roles = append(roles, "hr")
	}
	if u.IsFinancial {
		roles = append(roles, "financial")
	}
	if u.IsDev {
		roles = append(roles, "dev")
	}
	return roles
}

// Credentials for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest for user registration.
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"firstName,omitempty"`
	LastName    string  `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// TokenResult contains the issued access token.
type TokenResult struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
}
