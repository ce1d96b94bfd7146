package domain

import (
	"time"

	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

// Session is a persisted admin login: the backend bearer token plus the
// admin profile returned at login time. The token is stored encrypted at
// rest and looked up by fingerprint, never by plaintext.
type Session struct {
	ID        string
	Token     string
	Admin     gatewaysdk.AdminProfile
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
