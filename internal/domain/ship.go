package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const largeShipLengthMeters = 10

type Ship struct {
	ID                  int64               `db:"id"`
	Name                string              `db:"name"`
	InternationalNumber string              `db:"international_number"`
	CallSign            *string             `db:"call_sign"`
	Marking             *string             `db:"marking"`
	RegistrationNumber  *string             `db:"registration_number"`
	HomePort            *string             `db:"home_port"`
	Length              decimal.NullDecimal `db:"length"`
	Width               decimal.NullDecimal `db:"width"`
	GrossTonnage        decimal.NullDecimal `db:"gross_tonnage"`
	EnginePower         decimal.NullDecimal `db:"engine_power"`
	EngineType          *string             `db:"engine_type"`
	FuelType            *string             `db:"fuel_type"`
	AvgFuelPerHour      decimal.NullDecimal `db:"avg_fuel_per_hour"`
	IsLargeShip         bool                `db:"is_large_ship"`
	OwnerFisherID       *int64              `db:"owner_fisher_id"`
	CaptainFisherID     *int64              `db:"captain_fisher_id"`
	OperatorFisherID    *int64              `db:"operator_fisher_id"`
	IsActive            bool                `db:"is_active"`
	Status              string              `db:"status"`
	CreatedAt           time.Time           `db:"created_at"`
	UpdatedAt           *time.Time          `db:"updated_at"`
}

// IsOverLengthLimit reports whether the vessel exceeds the 10-meter bound that
// makes it a "large ship" subject to electronic logbook requirements.
func (s *Ship) IsOverLengthLimit() bool {
	return s.Length.Valid && s.Length.Decimal.GreaterThan(decimal.NewFromInt(largeShipLengthMeters))
}
