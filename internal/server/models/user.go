package models

import "time"

// Role is the enumerated authorization role carried in access tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the identity record. PasswordHash and TwoFASecret never leave the
// server; use Public for anything returned to a caller.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	TwoFAEnabled bool
	TwoFASecret  *string
	LastLogin    *time.Time
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the optional, user-editable fields.
type Profile struct {
	FirstName   *string
	LastName    *string
	CompanyName *string
	Timezone    *string
}

// TwoFAState is the position of a user in the two-factor enrollment
// state machine, derived from TwoFASecret and TwoFAEnabled.
type TwoFAState int

const (
	TwoFADisabled TwoFAState = iota
	TwoFAPendingConfirmation
	TwoFAEnabled
)

func (s TwoFAState) String() string {
	switch s {
	case TwoFAPendingConfirmation:
		return "pending_confirmation"
	case TwoFAEnabled:
		return "enabled"
	default:
		return "disabled"
	}
}

// TwoFAState derives the enrollment state.
func (u *User) TwoFAState() TwoFAState {
	hasSecret := u.TwoFASecret != nil && *u.TwoFASecret != ""
	switch {
	case u.TwoFAEnabled && hasSecret:
		return TwoFAEnabled
	case hasSecret:
		return TwoFAPendingConfirmation
	default:
		return TwoFADisabled
	}
}

// PublicUser is the caller-visible projection of User.
type PublicUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	TwoFAEnabled bool       `json:"twoFaEnabled"`
	FirstName    *string    `json:"firstName,omitempty"`
	LastName     *string    `json:"lastName,omitempty"`
	CompanyName  *string    `json:"companyName,omitempty"`
	Timezone     *string    `json:"timezone,omitempty"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Public strips credential material.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		IsActive:     u.IsActive,
		TwoFAEnabled: u.TwoFAEnabled,
		FirstName:    u.Profile.FirstName,
		LastName:     u.Profile.LastName,
		CompanyName:  u.Profile.CompanyName,
		Timezone:     u.Profile.Timezone,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
	}
}
