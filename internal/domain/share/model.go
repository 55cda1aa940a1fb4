package share

import (
	"time"

	"github.com/google/uuid"
)

// ShareConfig maps to the share_config table. The token is a plain UUID
// string, good enough to make dashboard URLs unguessable in practice but
// deliberately not a cryptographic credential.
type ShareConfig struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Token          string     `db:"token" json:"token"`
	Label          *string    `db:"label" json:"label,omitempty"`
	Active         bool       `db:"active" json:"active"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	LastAccessedAt *time.Time `db:"last_accessed_at" json:"last_accessed_at,omitempty"`
}
