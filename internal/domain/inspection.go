package domain

import "time"

const (
	InspectionStatusPlanned   = "Planned"
	InspectionStatusCompleted = "Completed"
	InspectionStatusCancelled = "Cancelled"
)

type Inspection struct {
	ID             int64     `db:"id"`
	InspectorID    *int64    `db:"inspector_id"`
	ShipID         *int64    `db:"ship_id"`
	LicenseID      *int64    `db:"license_id"`
	InspectionDate time.Time `db:"inspection_date"`
	InspectionType string    `db:"inspection_type"`
	Location       *string   `db:"location"`
	Findings       *string   `db:"findings"`
	Violations     *string   `db:"violations"`
	ActionsTaken   *string   `db:"actions_taken"`
	Status         string    `db:"status"`
	Notes          *string   `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
}
