// Package storetest provides an in-memory store.Store over a seeded entity
// graph. It applies the same filtering and join semantics as the SQL store so
// service tests exercise real report behavior.
package storetest

import (
	"context"
	"sort"
	"strings"
	"time"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/constants"
	"fishreg/internal/pkg/store"
)

type Fake struct {
	Fishers        []*domain.Fisher
	Ships          []*domain.Ship
	Licenses       []*domain.License
	Tickets        []*domain.AmateurTicket
	AmateurCatches []*domain.AmateurCatch
	Entries        []*domain.LogbookEntry
	CatchDetails   []*domain.CatchDetail
	Inspections    []*domain.Inspection
	Inspectors     []*domain.Inspector
	Users          []*domain.User

	// Err, when set, is returned by every method to simulate a store failure.
	Err error
}

var _ store.Store = (*Fake)(nil)

func (f *Fake) fisherByID(id int64) *domain.Fisher {
	for _, fisher := range f.Fishers {
		if fisher.ID == id {
			return fisher
		}
	}
	return nil
}

func (f *Fake) shipByID(id int64) *domain.Ship {
	for _, ship := range f.Ships {
		if ship.ID == id {
			return ship
		}
	}
	return nil
}

func (f *Fake) licenseByID(id int64) *domain.License {
	for _, license := range f.Licenses {
		if license.ID == id {
			return license
		}
	}
	return nil
}

func (f *Fake) ticketByID(id int64) *domain.AmateurTicket {
	for _, ticket := range f.Tickets {
		if ticket.ID == id {
			return ticket
		}
	}
	return nil
}

func (f *Fake) inspectorByID(id int64) *domain.Inspector {
	for _, inspector := range f.Inspectors {
		if inspector.ID == id {
			return inspector
		}
	}
	return nil
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func (f *Fake) SelectExpiringLicenses(_ context.Context, from, to time.Time) ([]*domain.ExpiringLicenseRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.ExpiringLicenseRow
	for _, l := range f.Licenses {
		if l.Status != domain.LicenseStatusActive || l.ExpiryDate == nil || !within(*l.ExpiryDate, from, to) {
			continue
		}

		row := &domain.ExpiringLicenseRow{
			LicenseID:     l.ID,
			LicenseNumber: l.LicenseNumber,
			ExpiryDate:    *l.ExpiryDate,
		}
		if l.ShipID != nil {
			if ship := f.shipByID(*l.ShipID); ship != nil {
				row.ShipNumber = &ship.InternationalNumber
			}
		}
		if fisher := f.fisherByID(l.FisherID); fisher != nil {
			row.FirstName = &fisher.FirstName
			row.LastName = &fisher.LastName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *Fake) SelectAmateurCatchesSince(_ context.Context, since time.Time) ([]*domain.AmateurCatchRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.AmateurCatchRow
	for _, c := range f.AmateurCatches {
		if c.CatchDate.Before(since) {
			continue
		}
		ticket := f.ticketByID(c.AmateurTicketID)
		if ticket == nil {
			continue
		}

		row := &domain.AmateurCatchRow{FisherID: ticket.FisherID, WeightKgs: c.WeightKgs}
		if fisher := f.fisherByID(ticket.FisherID); fisher != nil {
			row.FirstName = &fisher.FirstName
			row.LastName = &fisher.LastName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *Fake) SelectShipTrips(_ context.Context, opts store.SelectShipTripsOpts) ([]*domain.TripRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.TripRow
	for _, e := range f.Entries {
		if !within(e.FishingDate, opts.From, opts.To) {
			continue
		}
		license := f.licenseByID(e.LicenseID)
		if license == nil || license.ShipID == nil {
			continue
		}
		if opts.ExcludeRevoked && license.Status == domain.LicenseStatusRevoked {
			continue
		}

		row := &domain.TripRow{
			EntryID:       e.ID,
			ShipID:        *license.ShipID,
			LicenseStatus: license.Status,
			FuelLiters:    e.FuelLiters,
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
		}
		if ship := f.shipByID(*license.ShipID); ship != nil {
			row.ShipNumber = &ship.InternationalNumber
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *Fake) SelectCatchWeights(_ context.Context, entryIDs []int64) ([]*domain.CatchWeightRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	ids := make(map[int64]bool, len(entryIDs))
	for _, id := range entryIDs {
		ids[id] = true
	}

	var rows []*domain.CatchWeightRow
	for _, cd := range f.CatchDetails {
		if ids[cd.LogbookEntryID] {
			rows = append(rows, &domain.CatchWeightRow{
				LogbookEntryID: cd.LogbookEntryID,
				WeightKgs:      cd.WeightKgs,
			})
		}
	}
	return rows, nil
}

func (f *Fake) SelectInspections(_ context.Context, opts store.SelectInspectionsOpts) ([]*domain.InspectionRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.InspectionRow
	for _, i := range f.Inspections {
		if !within(i.InspectionDate, opts.From, opts.To) {
			continue
		}
		if opts.InspectorID != nil && (i.InspectorID == nil || *i.InspectorID != *opts.InspectorID) {
			continue
		}

		row := &domain.InspectionRow{
			InspectionID:   i.ID,
			InspectionDate: i.InspectionDate,
			InspectionType: i.InspectionType,
			Status:         i.Status,
			Violations:     i.Violations,
			ActionsTaken:   i.ActionsTaken,
		}
		if i.InspectorID != nil {
			if inspector := f.inspectorByID(*i.InspectorID); inspector != nil {
				row.InspectorFirst = &inspector.FirstName
				row.InspectorLast = &inspector.LastName
			}
		}
		if i.ShipID != nil {
			if ship := f.shipByID(*i.ShipID); ship != nil {
				row.ShipName = &ship.Name
			}
		}
		if i.LicenseID != nil {
			if license := f.licenseByID(*i.LicenseID); license != nil {
				row.LicenseNumber = license.LicenseNumber
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *Fake) ListFishers(_ context.Context) ([]*domain.Fisher, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	fishers := make([]*domain.Fisher, len(f.Fishers))
	copy(fishers, f.Fishers)
	sort.SliceStable(fishers, func(i, j int) bool {
		if fishers[i].LastName != fishers[j].LastName {
			return fishers[i].LastName < fishers[j].LastName
		}
		return fishers[i].FirstName < fishers[j].FirstName
	})
	return fishers, nil
}

func (f *Fake) SelectLicensesIssuedBetween(_ context.Context, from, to time.Time) ([]*domain.IssuedLicenseRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.IssuedLicenseRow
	for _, l := range f.Licenses {
		if within(l.IssueDate, from, to) {
			rows = append(rows, &domain.IssuedLicenseRow{FisherID: l.FisherID, Status: l.Status})
		}
	}
	return rows, nil
}

func (f *Fake) CountActiveShipsByOwner(_ context.Context) ([]*domain.OwnerShipCount, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	counts := make(map[int64]int64)
	order := make([]int64, 0)
	for _, s := range f.Ships {
		if !s.IsActive || s.OwnerFisherID == nil {
			continue
		}
		if _, ok := counts[*s.OwnerFisherID]; !ok {
			order = append(order, *s.OwnerFisherID)
		}
		counts[*s.OwnerFisherID]++
	}

	rows := make([]*domain.OwnerShipCount, 0, len(order))
	for _, fisherID := range order {
		rows = append(rows, &domain.OwnerShipCount{FisherID: fisherID, Ships: counts[fisherID]})
	}
	return rows, nil
}

func (f *Fake) SelectAmateurWeightsByTicketYear(_ context.Context, from, to time.Time) ([]*domain.FisherWeightRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.FisherWeightRow
	for _, c := range f.AmateurCatches {
		ticket := f.ticketByID(c.AmateurTicketID)
		if ticket == nil || !within(ticket.IssueDate, from, to) {
			continue
		}
		rows = append(rows, &domain.FisherWeightRow{FisherID: ticket.FisherID, WeightKgs: c.WeightKgs})
	}
	return rows, nil
}

func (f *Fake) SelectProfessionalWeights(_ context.Context, from, to time.Time) ([]*domain.FisherWeightRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	entries := make(map[int64]*domain.LogbookEntry, len(f.Entries))
	for _, e := range f.Entries {
		entries[e.ID] = e
	}

	var rows []*domain.FisherWeightRow
	for _, cd := range f.CatchDetails {
		entry := entries[cd.LogbookEntryID]
		if entry == nil || !within(entry.FishingDate, from, to) {
			continue
		}
		license := f.licenseByID(entry.LicenseID)
		if license == nil || !within(license.IssueDate, from, to) {
			continue
		}
		rows = append(rows, &domain.FisherWeightRow{FisherID: license.FisherID, WeightKgs: cd.WeightKgs})
	}
	return rows, nil
}

func (f *Fake) matchShips(opts store.ListShipsOpts) []*domain.Ship {
	var ships []*domain.Ship
	for _, s := range f.Ships {
		if opts.ActiveOnly && !s.IsActive {
			continue
		}
		if opts.Search != nil && !shipMatches(s, *opts.Search) {
			continue
		}
		ships = append(ships, s)
	}
	sort.SliceStable(ships, func(i, j int) bool { return ships[i].Name < ships[j].Name })
	return ships
}

func shipMatches(s *domain.Ship, search string) bool {
	search = strings.ToLower(search)
	for _, field := range []*string{&s.Name, &s.InternationalNumber, s.CallSign, s.RegistrationNumber} {
		if field != nil && strings.Contains(strings.ToLower(*field), search) {
			return true
		}
	}
	return false
}

func (f *Fake) ListShips(_ context.Context, opts store.ListShipsOpts) ([]*domain.Ship, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	ships := f.matchShips(opts)
	if opts.Limit > 0 {
		if opts.Offset >= len(ships) {
			return nil, nil
		}
		ships = ships[opts.Offset:]
		if len(ships) > opts.Limit {
			ships = ships[:opts.Limit]
		}
	}
	return ships, nil
}

func (f *Fake) CountShips(_ context.Context, opts store.ListShipsOpts) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return int64(len(f.matchShips(opts))), nil
}

func (f *Fake) GetShipByID(_ context.Context, id int64) (*domain.Ship, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if ship := f.shipByID(id); ship != nil {
		return ship, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *Fake) SelectFishersByIDs(_ context.Context, ids []int64) ([]*domain.Fisher, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var fishers []*domain.Fisher
	for _, fisher := range f.Fishers {
		if wanted[fisher.ID] {
			fishers = append(fishers, fisher)
		}
	}
	return fishers, nil
}

func (f *Fake) SelectActiveLicenseNumbers(_ context.Context, shipIDs []int64) ([]*domain.ShipLicenseNumber, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	wanted := make(map[int64]bool, len(shipIDs))
	for _, id := range shipIDs {
		wanted[id] = true
	}

	best := make(map[int64]*string)
	order := make([]int64, 0)
	for _, l := range f.Licenses {
		if l.Status != domain.LicenseStatusActive || l.ShipID == nil || !wanted[*l.ShipID] {
			continue
		}
		current, ok := best[*l.ShipID]
		if !ok {
			order = append(order, *l.ShipID)
		}
		if !ok || (l.LicenseNumber != nil && (current == nil || *l.LicenseNumber < *current)) {
			best[*l.ShipID] = l.LicenseNumber
		}
	}

	rows := make([]*domain.ShipLicenseNumber, 0, len(order))
	for _, shipID := range order {
		rows = append(rows, &domain.ShipLicenseNumber{ShipID: shipID, LicenseNumber: best[shipID]})
	}
	return rows, nil
}

func (f *Fake) ListLicenses(_ context.Context, opts store.ListLicensesOpts) ([]*domain.LicenseListRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.LicenseListRow
	for _, l := range f.Licenses {
		if opts.Status != nil && l.Status != *opts.Status {
			continue
		}
		if opts.FisherID != nil && l.FisherID != *opts.FisherID {
			continue
		}
		if opts.ShipID != nil && (l.ShipID == nil || *l.ShipID != *opts.ShipID) {
			continue
		}
		if opts.ExpiringBefore != nil {
			if l.ExpiryDate == nil || l.ExpiryDate.After(*opts.ExpiringBefore) || l.ExpiryDate.Before(time.Now().Truncate(24*time.Hour)) {
				continue
			}
		}

		row := &domain.LicenseListRow{License: *l}
		if fisher := f.fisherByID(l.FisherID); fisher != nil {
			row.FisherFirst = &fisher.FirstName
			row.FisherLast = &fisher.LastName
		}
		if l.ShipID != nil {
			if ship := f.shipByID(*l.ShipID); ship != nil {
				row.ShipName = &ship.Name
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].IssueDate.After(rows[j].IssueDate) })
	return rows, nil
}

func (f *Fake) ListInspectionRecords(_ context.Context, opts store.ListInspectionRecordsOpts) ([]*domain.InspectionListRow, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	var rows []*domain.InspectionListRow
	for _, i := range f.Inspections {
		if opts.FromDate != nil && i.InspectionDate.Before(*opts.FromDate) {
			continue
		}
		if opts.ToDate != nil && i.InspectionDate.After(*opts.ToDate) {
			continue
		}
		if opts.Status != nil && i.Status != *opts.Status {
			continue
		}

		row := &domain.InspectionListRow{Inspection: *i}
		if i.InspectorID != nil {
			if inspector := f.inspectorByID(*i.InspectorID); inspector != nil {
				row.InspectorFirst = &inspector.FirstName
				row.InspectorLast = &inspector.LastName
			}
		}
		if i.ShipID != nil {
			if ship := f.shipByID(*i.ShipID); ship != nil {
				row.ShipName = &ship.Name
			}
		}
		if i.LicenseID != nil {
			if license := f.licenseByID(*i.LicenseID); license != nil {
				row.LicenseNumber = license.LicenseNumber
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].InspectionDate.After(rows[j].InspectionDate) })
	return rows, nil
}

func (f *Fake) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, u := range f.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *Fake) InsertLicense(_ context.Context, license *domain.License) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}

	license.ID = int64(len(f.Licenses) + 1)
	f.Licenses = append(f.Licenses, license)
	return license.ID, nil
}

func (f *Fake) InsertInspection(_ context.Context, inspection *domain.Inspection) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}

	inspection.ID = int64(len(f.Inspections) + 1)
	f.Inspections = append(f.Inspections, inspection)
	return inspection.ID, nil
}
