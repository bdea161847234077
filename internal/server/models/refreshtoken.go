package models

import "time"

// RefreshToken is a persisted session grant. Rows are created and deleted,
// never updated.
type RefreshToken struct {
	ID         string
	UserID     string
	Token      string
	ExpiresAt  time.Time
	DeviceID   *string
	DeviceName *string
	IPAddress  *string
	UserAgent  *string
	CreatedAt  time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
