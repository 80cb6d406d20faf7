package dto

import (
	"time"

	"dentman/internal/domain/accounts"
)

// --- Request DTOs ---

// RegisterRequest for user registration.
type RegisterRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FirstName   string  `json:"firstName,omitempty"`
	LastName    string  `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// ToAccountsRequest converts to domain request.
func (r *RegisterRequest) ToAccountsRequest() accounts.RegisterRequest {
	return accounts.RegisterRequest{
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

// LoginRequest for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r *LoginRequest) ToCredentials() accounts.Credentials {
	return accounts.Credentials{
		Email:    r.Email,
		Password: r.Password,
	}
}

// UpdateUserRequest edits profile fields and role flags.
// Role combinations are checked by the role-consistency rules on save.
type UpdateUserRequest struct {
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	PhoneNumber        *string `json:"phoneNumber"`
	IsPatient          bool    `json:"isPatient"`
	IsWorker           bool    `json:"isWorker"`
	IsDentist          bool    `json:"isDentist"`
	IsDentistAssistant bool    `json:"isDentistAssistant"`
	IsDentistStaff     bool    `json:"isDentistStaff"`
	IsManagementStaff  bool    `json:"isManagementStaff"`
	IsHR               bool    `json:"isHR"`
	IsFinancial        bool    `json:"isFinancial"`
	IsActive           bool    `json:"isActive"`
	AdditionalInfo     *string `json:"additionalInfo"`
	Version            int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing user.
// Email, password and the dev flag are not editable through this endpoint.
func (r *UpdateUserRequest) ApplyTo(u *accounts.User) {
	u.FirstName = r.FirstName
	u.LastName = r.LastName
	u.PhoneNumber = r.PhoneNumber
	u.IsPatient = r.IsPatient
	u.IsWorker = r.IsWorker
	u.IsDentist = r.IsDentist
	u.IsDentistAssistant = r.IsDentistAssistant
	u.IsDentistStaff = r.IsDentistStaff
	u.IsManagementStaff = r.IsManagementStaff
	u.IsHR = r.IsHR
	u.IsFinancial = r.IsFinancial
	u.IsActive = r.IsActive
	u.AdditionalInfo = r.AdditionalInfo
	u.Version = r.Version
}

// --- Response DTOs ---

// TokenResponse represents the issued token.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
}

// FromTokenResult creates response from domain token result.
func FromTokenResult(t *accounts.TokenResult) *TokenResponse {
	return &TokenResponse{
		AccessToken: t.AccessToken,
		ExpiresAt:   t.ExpiresAt,
		TokenType:   t.TokenType,
	}
}

// UserResponse represents user in API response.
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FirstName          string     `json:"firstName,omitempty"`
	LastName           string     `json:"lastName,omitempty"`
	FullName           string     `json:"fullName"`
	PhoneNumber        *string    `json:"phoneNumber,omitempty"`
	IsPatient          bool       `json:"isPatient"`
	IsWorker           bool       `json:"isWorker"`
	IsDentist          bool       `json:"isDentist"`
	IsDentistAssistant bool       `json:"isDentistAssistant"`
	IsDentistStaff     bool       `json:"isDentistStaff"`
	IsManagementStaff  bool       `json:"isManagementStaff"`
	IsHR               bool       `json:"isHR"`
	IsFinancial        bool       `json:"isFinancial"`
	IsActive           bool       `json:"isActive"`
	Roles              []string   `json:"roles"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	Version            int        `json:"version"`
}

// FromAccountUser creates response from domain user.
func FromAccountUser(u *accounts.User) *UserResponse {
	return &UserResponse{
		ID:                 u.ID.String(),
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		FullName:           u.FullName(),
		PhoneNumber:        u.PhoneNumber,
		IsPatient:          u.IsPatient,
		IsWorker:           u.IsWorker,
		IsDentist:          u.IsDentist,
		IsDentistAssistant: u.IsDentistAssistant,
		IsDentistStaff:     u.IsDentistStaff,
		IsManagementStaff:  u.IsManagementStaff,
		IsHR:               u.IsHR,
		IsFinancial:        u.IsFinancial,
		IsActive:           u.IsActive,
		Roles:              u.Roles(),
		LastLoginAt:        u.LastLoginAt,
		CreatedAt:          u.CreatedAt,
		Version:            u.Version,
	}
}
