package domain

import "time"

// License statuses as stored.
const (
	LicenseStatusActive    = "Active"
	LicenseStatusExpired   = "Expired"
	LicenseStatusRevoked   = "Revoked"
	LicenseStatusSuspended = "Suspended"
)

type License struct {
	ID               int64      `db:"id"`
	LicenseNumber    *string    `db:"license_number"`
	FisherID         int64      `db:"fisher_id"`
	ShipID           *int64     `db:"ship_id"`
	IssueDate        time.Time  `db:"issue_date"`
	ExpiryDate       *time.Time `db:"expiry_date"`
	Status           string     `db:"status"`
	LicenseType      *string    `db:"license_type"`
	IssuingAuthority *string    `db:"issuing_authority"`
	Notes            *string    `db:"notes"`
	CreatedAt        time.Time  `db:"created_at"`
}
