package entities

import "time"

// Session is server-side state keyed by the sid cookie.
type Session struct {
	ID        string
	Values    map[string]string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
