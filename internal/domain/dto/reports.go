// Package dto holds the result record shapes returned by the report and
// registry services. Field sets and defaults ("N/A", "Unknown", zeros) are
// part of the contract consumed downstream.
package dto

import "time"

type ExpiringLicense struct {
	LicenseID     int64     `json:"license_id"`
	LicenseNumber string    `json:"license_number"`
	ShipNumber    string    `json:"ship_international_number"`
	OwnerName     string    `json:"owner_name"`
	ExpiryDate    time.Time `json:"expiry_date"`
	DaysRemaining int       `json:"days_remaining"`
}

type AmateurRanking struct {
	FisherID        int64   `json:"fisher_id"`
	FisherName      string  `json:"fisher_name"`
	TotalCatchInKgs float64 `json:"total_catch_in_kgs"`
}

type ShipCatchAnalysis struct {
	ShipNumber         string  `json:"ship_international_number"`
	TotalTrips         int     `json:"total_trips"`
	TotalCatchKgs      float64 `json:"total_catch_kgs"`
	MaxCatchPerTripKgs float64 `json:"max_catch_per_trip_kgs"`
	MinCatchPerTripKgs float64 `json:"min_catch_per_trip_kgs"`
	AvgCatchPerTripKgs float64 `json:"avg_catch_per_trip_kgs"`
}

type ShipFuelEfficiency struct {
	ShipNumber        string  `json:"ship_international_number"`
	TotalCatchKgs     float64 `json:"total_catch_kgs"`
	TotalFuelUsed     float64 `json:"total_fuel_used"`
	TotalFishingHours float64 `json:"total_fishing_hours"`
	FuelPerKgCatch    float64 `json:"fuel_per_kg_catch"`
	AvgFuelPerHour    float64 `json:"avg_fuel_per_hour"`
}

type InspectionReport struct {
	InspectionID    int64     `json:"inspection_id"`
	InspectionDate  time.Time `json:"inspection_date"`
	InspectorName   string    `json:"inspector_name"`
	ShipName        string    `json:"ship_name"`
	LicenseNumber   string    `json:"license_number"`
	InspectionType  string    `json:"inspection_type"`
	Status          string    `json:"status"`
	ViolationsFound bool      `json:"violations_found"`
	ActionsTaken    *string   `json:"actions_taken"`
}

type FisherStatistics struct {
	FisherID               int64   `json:"fisher_id"`
	FisherName             string  `json:"fisher_name"`
	TotalLicenses          int     `json:"total_licenses"`
	ActiveLicenses         int     `json:"active_licenses"`
	OwnedShips             int     `json:"owned_ships"`
	AmateurCatchesKgs      float64 `json:"amateur_catches_kgs"`
	ProfessionalCatchesKgs float64 `json:"professional_catches_kgs"`
	TotalCatchesKgs        float64 `json:"total_catches_kgs"`
}
