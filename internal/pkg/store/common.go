package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fishreg/internal/pkg/constants"
)

const (
	tableFishers        = "fishers"
	tableShips          = "ships"
	tableLicenses       = "licenses"
	tableLogbookEntries = "logbook_entries"
	tableCatchDetails   = "catch_details"
	tableAmateurTickets = "amateur_tickets"
	tableAmateurCatches = "amateur_catches"
	tableInspections    = "inspections"
	tableInspectors     = "inspectors"
	tableUsers          = "users"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
