package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ship struct {
	ID                  int64               `json:"id"`
	Name                string              `json:"name"`
	InternationalNumber string              `json:"international_number"`
	CallSign            *string             `json:"call_sign,omitempty"`
	RegistrationNumber  *string             `json:"registration_number,omitempty"`
	HomePort            *string             `json:"home_port,omitempty"`
	Length              decimal.NullDecimal `json:"length,omitempty"`
	GrossTonnage        decimal.NullDecimal `json:"gross_tonnage,omitempty"`
	EngineType          *string             `json:"engine_type,omitempty"`
	FuelType            *string             `json:"fuel_type,omitempty"`
	AvgFuelPerHour      decimal.NullDecimal `json:"avg_fuel_per_hour,omitempty"`
	IsLargeShip         bool                `json:"is_large_ship"`
	IsActive            bool                `json:"is_active"`
	OwnerName           *string             `json:"owner_name,omitempty"`
	CaptainName         *string             `json:"captain_name,omitempty"`
	ActiveLicenseNumber *string             `json:"active_license_number,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
}

// ShipPage is the paginated envelope around a ship listing.
type ShipPage struct {
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	Ships      []*Ship `json:"ships"`
}

type License struct {
	ID            int64      `json:"id"`
	LicenseNumber string     `json:"license_number"`
	FisherID      int64      `json:"fisher_id"`
	FisherName    *string    `json:"fisher_name,omitempty"`
	ShipID        *int64     `json:"ship_id,omitempty"`
	ShipName      *string    `json:"ship_name,omitempty"`
	IssueDate     time.Time  `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	Status        string     `json:"status"`
	LicenseType   *string    `json:"license_type,omitempty"`
}

type Inspection struct {
	ID             int64     `json:"id"`
	InspectorID    *int64    `json:"inspector_id,omitempty"`
	ShipID         *int64    `json:"ship_id,omitempty"`
	LicenseID      *int64    `json:"license_id,omitempty"`
	InspectionDate time.Time `json:"inspection_date"`
	InspectionType string    `json:"inspection_type"`
	Location       *string   `json:"location,omitempty"`
	Findings       *string   `json:"findings,omitempty"`
	Violations     *string   `json:"violations,omitempty"`
	ActionsTaken   *string   `json:"actions_taken,omitempty"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes,omitempty"`
	InspectorName  *string   `json:"inspector_name,omitempty"`
	ShipName       *string   `json:"ship_name,omitempty"`
	LicenseNumber  *string   `json:"license_number,omitempty"`
}

type Fisher struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	PersonalNumber string  `json:"personal_number"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	IsActive       bool    `json:"is_active"`
}
