package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AmateurTicket struct {
	ID               int64      `db:"id"`
	FisherID         int64      `db:"fisher_id"`
	TicketNumber     string     `db:"ticket_number"`
	IssueDate        time.Time  `db:"issue_date"`
	ExpiryDate       *time.Time `db:"expiry_date"`
	Status           string     `db:"status"`
	IssuingAuthority *string    `db:"issuing_authority"`
	CreatedAt        time.Time  `db:"created_at"`
}

type AmateurCatch struct {
	ID              int64               `db:"id"`
	AmateurTicketID int64               `db:"amateur_ticket_id"`
	CatchDate       time.Time           `db:"catch_date"`
	FishSpecies     string              `db:"fish_species"`
	WeightKgs       decimal.NullDecimal `db:"weight_kgs"`
	Quantity        *int64              `db:"quantity"`
	FishingLocation *string             `db:"fishing_location"`
	FishingMethod   *string             `db:"fishing_method"`
	CreatedAt       time.Time           `db:"created_at"`
}
