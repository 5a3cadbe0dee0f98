package models

import "time"

// BlocklistEntry records a revoked JWT identifier. A token whose jti has a
// row here is rejected regardless of its cryptographic validity.
type BlocklistEntry struct {
	JTI       string    `json:"jti" db:"jti"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
