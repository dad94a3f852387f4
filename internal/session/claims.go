// Package session maintains the session-claims cache that downstream request
// handling reads instead of calling the identity service on every request.
//
// Claims are versioned: each refresh bumps the version so stale readers can
// detect that a newer claims document exists rather than being imperatively
// invalidated.
package session

import "time"

// Claims is the cached authorization snapshot for one user.
type Claims struct {
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	Role           string    `json:"role"`
	Permissions    []string  `json:"permissions"`
	Version        int64     `json:"version"`
	RefreshedAt    time.Time `json:"refreshed_at"`
}
