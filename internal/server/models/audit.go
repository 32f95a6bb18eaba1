package models

import "time"

// Audit is a named status record. Audits are not attributed to users: writes
// are gated by a valid token but the author is not stored.
type Audit struct {
	ID        int64
	Name      string
	Status    string
	CreatedAt time.Time
}
