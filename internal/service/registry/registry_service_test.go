package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/store/storetest"
)

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func shipFixture() *storetest.Fake {
	return &storetest.Fake{
		Fishers: []*domain.Fisher{
			{ID: 1, FirstName: "Ivan", LastName: "Petrov"},
			{ID: 2, FirstName: "Maria", LastName: "Ivanova"},
		},
		Ships: []*domain.Ship{
			{ID: 1, Name: "Albatros", InternationalNumber: "IMO1111111", IsActive: true,
				OwnerFisherID: i64Ptr(1), CaptainFisherID: i64Ptr(2)},
			{ID: 2, Name: "Black Pearl", InternationalNumber: "IMO2222222", IsActive: true},
			{ID: 3, Name: "Cormoran", InternationalNumber: "IMO3333333", IsActive: false},
		},
		Licenses: []*domain.License{
			{ID: 1, FisherID: 1, ShipID: i64Ptr(1), LicenseNumber: strPtr("LIC-2024-001"),
				Status: domain.LicenseStatusActive, IssueDate: day(2024, 1, 1)},
			{ID: 2, FisherID: 1, ShipID: i64Ptr(2), LicenseNumber: strPtr("LIC-2023-050"),
				Status: domain.LicenseStatusRevoked, IssueDate: day(2023, 1, 1)},
		},
	}
}

func TestListShips_PageEnvelope(t *testing.T) {
	svc := NewRegistryService(shipFixture())

	page, err := svc.ListShips(context.Background(), ListShipsOpts{PageSize: 2})
	require.NoError(t, err)
	require.Equal(t, int64(3), page.TotalCount)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 2, page.PageSize)
	require.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Ships, 2)

	first := page.Ships[0]
	require.Equal(t, "Albatros", first.Name)
	require.NotNil(t, first.OwnerName)
	require.Equal(t, "Ivan Petrov", *first.OwnerName)
	require.NotNil(t, first.CaptainName)
	require.Equal(t, "Maria Ivanova", *first.CaptainName)
	require.NotNil(t, first.ActiveLicenseNumber)
	require.Equal(t, "LIC-2024-001", *first.ActiveLicenseNumber)

	// ship 2 only carries a revoked license
	second := page.Ships[1]
	require.Equal(t, "Black Pearl", second.Name)
	require.Nil(t, second.OwnerName)
	require.Nil(t, second.ActiveLicenseNumber)

	page, err = svc.ListShips(context.Background(), ListShipsOpts{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Ships, 1)
	require.Equal(t, "Cormoran", page.Ships[0].Name)
}

func TestListShips_Filters(t *testing.T) {
	svc := NewRegistryService(shipFixture())

	page, err := svc.ListShips(context.Background(), ListShipsOpts{ActiveOnly: true})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalCount)

	page, err = svc.ListShips(context.Background(), ListShipsOpts{Search: strPtr("pearl")})
	require.NoError(t, err)
	require.Len(t, page.Ships, 1)
	require.Equal(t, "Black Pearl", page.Ships[0].Name)
}

func TestGetShip(t *testing.T) {
	svc := NewRegistryService(shipFixture())

	ship, err := svc.GetShip(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "IMO1111111", ship.InternationalNumber)
	require.NotNil(t, ship.OwnerName)

	_, err = svc.GetShip(context.Background(), 404)
	require.Error(t, err)
}

func TestListLicenses(t *testing.T) {
	fake := shipFixture()
	svc := NewRegistryService(fake)

	all, err := svc.ListLicenses(context.Background(), ListLicensesOpts{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest issue date first
	require.Equal(t, "LIC-2024-001", all[0].LicenseNumber)
	require.NotNil(t, all[0].FisherName)
	require.Equal(t, "Ivan Petrov", *all[0].FisherName)
	require.NotNil(t, all[0].ShipName)
	require.Equal(t, "Albatros", *all[0].ShipName)

	status := domain.LicenseStatusRevoked
	revoked, err := svc.ListLicenses(context.Background(), ListLicensesOpts{Status: &status})
	require.NoError(t, err)
	require.Len(t, revoked, 1)
	require.Equal(t, "LIC-2023-050", revoked[0].LicenseNumber)
}

func TestListLicenses_ExpiringSoon(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 10)
	far := time.Now().AddDate(0, 0, 60)
	fake := &storetest.Fake{
		Licenses: []*domain.License{
			{ID: 1, FisherID: 1, Status: domain.LicenseStatusActive, ExpiryDate: timePtr(soon)},
			{ID: 2, FisherID: 1, Status: domain.LicenseStatusActive, ExpiryDate: timePtr(far)},
			{ID: 3, FisherID: 1, Status: domain.LicenseStatusActive},
		},
	}
	svc := NewRegistryService(fake)

	result, err := svc.ListLicenses(context.Background(), ListLicensesOpts{ExpiringSoon: true})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, int64(1), result[0].ID)
}

func TestCreateLicense_Defaults(t *testing.T) {
	fake := &storetest.Fake{}
	svc := NewRegistryService(fake)

	license := &domain.License{LicenseNumber: strPtr("LIC-2025-007"), FisherID: 1}
	id, err := svc.CreateLicense(context.Background(), license)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Equal(t, domain.LicenseStatusActive, license.Status)
	require.False(t, license.IssueDate.IsZero())
	require.Len(t, fake.Licenses, 1)
}

func TestListInspections(t *testing.T) {
	location := "Varna port"
	fake := &storetest.Fake{
		Inspectors: []*domain.Inspector{{ID: 1, FirstName: "Stoyan", LastName: "Kolev"}},
		Ships:      []*domain.Ship{{ID: 1, Name: "Albatros"}},
		Inspections: []*domain.Inspection{
			{ID: 1, InspectorID: i64Ptr(1), ShipID: i64Ptr(1), InspectionDate: day(2024, 2, 1),
				InspectionType: "Routine", Status: domain.InspectionStatusCompleted, Location: &location},
			{ID: 2, InspectionDate: day(2024, 3, 1), InspectionType: "Targeted",
				Status: domain.InspectionStatusPlanned},
		},
	}
	svc := NewRegistryService(fake)

	from := day(2024, 1, 1)
	all, err := svc.ListInspections(context.Background(), ListInspectionsOpts{FromDate: &from})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	require.Equal(t, int64(2), all[0].ID)
	require.Nil(t, all[0].InspectorName)

	require.NotNil(t, all[1].InspectorName)
	require.Equal(t, "Stoyan Kolev", *all[1].InspectorName)
	require.NotNil(t, all[1].ShipName)
	require.Equal(t, "Albatros", *all[1].ShipName)

	status := domain.InspectionStatusPlanned
	planned, err := svc.ListInspections(context.Background(), ListInspectionsOpts{Status: &status})
	require.NoError(t, err)
	require.Len(t, planned, 1)
	require.Equal(t, int64(2), planned[0].ID)
}

func TestCreateInspection_Defaults(t *testing.T) {
	fake := &storetest.Fake{}
	svc := NewRegistryService(fake)

	inspection := &domain.Inspection{InspectionDate: day(2024, 4, 1)}
	id, err := svc.CreateInspection(context.Background(), inspection)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Equal(t, domain.InspectionStatusPlanned, inspection.Status)
	require.Equal(t, "Routine", inspection.InspectionType)
}

func TestListFishers(t *testing.T) {
	fake := &storetest.Fake{
		Fishers: []*domain.Fisher{
			{ID: 2, FirstName: "Maria", LastName: "Ivanova", IsActive: true},
			{ID: 1, FirstName: "Ivan", LastName: "Petrov"},
		},
	}
	svc := NewRegistryService(fake)

	fishers, err := svc.ListFishers(context.Background())
	require.NoError(t, err)
	require.Len(t, fishers, 2)
	// ordered by last name
	require.Equal(t, "Ivanova", fishers[0].LastName)
	require.Equal(t, "Petrov", fishers[1].LastName)
}

func TestRegistry_StoreErrorPropagates(t *testing.T) {
	fake := &storetest.Fake{Err: errors.New("connection reset")}
	svc := NewRegistryService(fake)
	ctx := context.Background()

	_, err := svc.ListShips(ctx, ListShipsOpts{})
	require.Error(t, err)

	_, err = svc.ListLicenses(ctx, ListLicensesOpts{})
	require.Error(t, err)

	_, err = svc.CreateLicense(ctx, &domain.License{FisherID: 1})
	require.Error(t, err)
}
