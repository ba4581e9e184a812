package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LogbookEntry struct {
	ID                int64               `db:"id"`
	LicenseID         int64               `db:"license_id"`
	FishingDate       time.Time           `db:"fishing_date"`
	StartTime         *time.Time          `db:"start_time"`
	EndTime           *time.Time          `db:"end_time"`
	FishingArea       *string             `db:"fishing_area"`
	FuelLiters        decimal.NullDecimal `db:"fuel_liters"`
	DistanceTraveled  decimal.NullDecimal `db:"distance_traveled"`
	WeatherConditions *string             `db:"weather_conditions"`
	Notes             *string             `db:"notes"`
	CreatedAt         time.Time           `db:"created_at"`
}

type CatchDetail struct {
	ID             int64               `db:"id"`
	LogbookEntryID int64               `db:"logbook_entry_id"`
	FishSpecies    string              `db:"fish_species"`
	WeightKgs      decimal.NullDecimal `db:"weight_kgs"`
	Quantity       *int64              `db:"quantity"`
	FishingGear    *string             `db:"fishing_gear"`
	Notes          *string             `db:"notes"`
	CreatedAt      time.Time           `db:"created_at"`
}
