package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUser_TwoFAState(t *testing.T) {
	tests := []struct {
		name string
		user User
		want TwoFAState
	}{
		{name: "no secret", user: User{}, want: TwoFADisabled},
		{name: "empty secret", user: User{TwoFASecret: strPtr("")}, want: TwoFADisabled},
		{name: "pending", user: User{TwoFASecret: strPtr("ABC")}, want: TwoFAPendingConfirmation},
		{name: "enabled", user: User{TwoFASecret: strPtr("ABC"), TwoFAEnabled: true}, want: TwoFAEnabled},
		{name: "flag without secret", user: User{TwoFAEnabled: true}, want: TwoFADisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.TwoFAState())
		})
	}
	assert.Equal(t, "pending_confirmation", TwoFAPendingConfirmation.String())
}

func TestUser_PublicHidesCredentials(t *testing.T) {
	u := &User{
		ID:           "u1",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$hash",
		TwoFASecret:  strPtr("SECRET"),
		Role:         RoleUser,
		Profile:      Profile{FirstName: strPtr("Alice")},
	}
	p := u.Public()
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "Alice", *p.FirstName)
	assert.Equal(t, RoleUser, p.Role)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	rt := &RefreshToken{ExpiresAt: now}
	assert.True(t, rt.Expired(now))
	assert.False(t, rt.Expired(now.Add(-time.Second)))

	pt := &PasswordResetToken{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, pt.Expired(now))
	assert.True(t, pt.Expired(now.Add(time.Minute)))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("ROOT").Valid())
}
