package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flat rows produced by the store's bulk report reads: the referenced
// relations are joined server-side, nullable because the relation may be
// absent. Grouping and derived metrics happen in the report service.

type ExpiringLicenseRow struct {
	LicenseID     int64     `db:"license_id"`
	LicenseNumber *string   `db:"license_number"`
	ExpiryDate    time.Time `db:"expiry_date"`
	ShipNumber    *string   `db:"ship_number"`
	FirstName     *string   `db:"first_name"`
	LastName      *string   `db:"last_name"`
}

type AmateurCatchRow struct {
	FisherID  int64               `db:"fisher_id"`
	FirstName *string             `db:"first_name"`
	LastName  *string             `db:"last_name"`
	WeightKgs decimal.NullDecimal `db:"weight_kgs"`
}

// TripRow is one logbook entry whose license resolves to a ship.
type TripRow struct {
	EntryID       int64               `db:"entry_id"`
	ShipID        int64               `db:"ship_id"`
	ShipNumber    *string             `db:"ship_number"`
	LicenseStatus string              `db:"license_status"`
	FuelLiters    decimal.NullDecimal `db:"fuel_liters"`
	StartTime     *time.Time          `db:"start_time"`
	EndTime       *time.Time          `db:"end_time"`
}

type CatchWeightRow struct {
	LogbookEntryID int64               `db:"logbook_entry_id"`
	WeightKgs      decimal.NullDecimal `db:"weight_kgs"`
}

type InspectionRow struct {
	InspectionID   int64     `db:"inspection_id"`
	InspectionDate time.Time `db:"inspection_date"`
	InspectorFirst *string   `db:"inspector_first"`
	InspectorLast  *string   `db:"inspector_last"`
	ShipName       *string   `db:"ship_name"`
	LicenseNumber  *string   `db:"license_number"`
	InspectionType string    `db:"inspection_type"`
	Status         string    `db:"status"`
	Violations     *string   `db:"violations"`
	ActionsTaken   *string   `db:"actions_taken"`
}

type IssuedLicenseRow struct {
	FisherID int64  `db:"fisher_id"`
	Status   string `db:"status"`
}

type OwnerShipCount struct {
	FisherID int64 `db:"fisher_id"`
	Ships    int64 `db:"ships"`
}

// FisherWeightRow attributes one recorded weight to a fisher, either through
// an amateur ticket or through a license's logbook entries.
type FisherWeightRow struct {
	FisherID  int64               `db:"fisher_id"`
	WeightKgs decimal.NullDecimal `db:"weight_kgs"`
}
