package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fishreg/internal/domain"
	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/constants"
	"fishreg/internal/pkg/store/storetest"
	"fishreg/internal/pkg/utils"
)

func i64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newTestAPI(t *testing.T, fake *storetest.Fake) *APIService {
	t.Helper()
	viper.Set(constants.ViperSecretKey, "test-secret")

	svc, err := NewAPIService(fake)
	require.NoError(t, err)
	return svc
}

func authCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: 1, Role: role})
	require.NoError(t, err)
	return &http.Cookie{Name: constants.CookieKeyAuthToken, Value: token}
}

func doRequest(svc *APIService, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	fake := &storetest.Fake{
		Users: []*domain.User{
			{ID: 1, Email: "admin@registry.bg", PasswordHash: string(hash), Role: constants.RoleAdmin},
		},
	}
	svc := newTestAPI(t, fake)

	rec := doRequest(svc, http.MethodPost, "/api/v1/auth/login",
		`{"email":"admin@registry.bg","password":"hunter2"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var foundCookie bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.CookieKeyAuthToken {
			foundCookie = true
			require.True(t, c.HttpOnly)
			require.NotEmpty(t, c.Value)
		}
	}
	require.True(t, foundCookie)

	rec = doRequest(svc, http.MethodPost, "/api/v1/auth/login",
		`{"email":"admin@registry.bg","password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(svc, http.MethodPost, "/api/v1/auth/login",
		`{"email":"not-an-email","password":"hunter2"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	svc := newTestAPI(t, &storetest.Fake{})

	rec := doRequest(svc, http.MethodGet, "/api/v1/reports/expiring-licenses", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(svc, http.MethodGet, "/api/v1/reports/expiring-licenses", "",
		&http.Cookie{Name: constants.CookieKeyAuthToken, Value: "tampered.token.value"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInspectorOnlyEndpoints(t *testing.T) {
	svc := newTestAPI(t, &storetest.Fake{})
	year := time.Now().Year()

	for _, target := range []string{
		fmt.Sprintf("/api/v1/reports/ship-fuel-efficiency/%d", year),
		"/api/v1/reports/inspections?start_date=2024-01-01&end_date=2024-02-01",
	} {
		rec := doRequest(svc, http.MethodGet, target, "", authCookie(t, constants.RoleOfficer))
		require.Equal(t, http.StatusForbidden, rec.Code, target)

		rec = doRequest(svc, http.MethodGet, target, "", authCookie(t, constants.RoleInspector))
		require.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestGetExpiringLicenses(t *testing.T) {
	expiry := time.Now().UTC().AddDate(0, 0, 10)
	fake := &storetest.Fake{
		Fishers: []*domain.Fisher{{ID: 1, FirstName: "Ivan", LastName: "Petrov"}},
		Ships:   []*domain.Ship{{ID: 1, InternationalNumber: "IMO1234567"}},
		Licenses: []*domain.License{
			{ID: 1, LicenseNumber: strPtr("LIC-2024-001"), FisherID: 1, ShipID: i64Ptr(1),
				Status: domain.LicenseStatusActive, ExpiryDate: timePtr(expiry)},
		},
	}
	svc := newTestAPI(t, fake)
	cookie := authCookie(t, constants.RoleOfficer)

	rec := doRequest(svc, http.MethodGet, "/api/v1/reports/expiring-licenses", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var result []*dto.ExpiringLicense
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 1)
	require.Equal(t, "LIC-2024-001", result[0].LicenseNumber)
	require.Equal(t, "IMO1234567", result[0].ShipNumber)

	// out of bounds
	rec = doRequest(svc, http.MethodGet, "/api/v1/reports/expiring-licenses?days_ahead=500", "", cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(svc, http.MethodGet, "/api/v1/reports/expiring-licenses?days_ahead=-1", "", cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAmateurRanking_Bounds(t *testing.T) {
	svc := newTestAPI(t, &storetest.Fake{})
	cookie := authCookie(t, constants.RoleOfficer)

	rec := doRequest(svc, http.MethodGet, "/api/v1/reports/amateur-ranking", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(svc, http.MethodGet, "/api/v1/reports/amateur-ranking?last_months=61", "", cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportYearBounds(t *testing.T) {
	svc := newTestAPI(t, &storetest.Fake{})
	cookie := authCookie(t, constants.RoleOfficer)

	for _, year := range []string{"1999", "abc", fmt.Sprint(time.Now().Year() + 1)} {
		rec := doRequest(svc, http.MethodGet, "/api/v1/reports/ship-catch-analysis/"+year, "", cookie)
		require.Equal(t, http.StatusBadRequest, rec.Code, year)
	}

	rec := doRequest(svc, http.MethodGet,
		fmt.Sprintf("/api/v1/reports/ship-catch-analysis/%d", time.Now().Year()), "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestInspectionsPeriodValidation(t *testing.T) {
	svc := newTestAPI(t, &storetest.Fake{})
	cookie := authCookie(t, constants.RoleAdmin)

	cases := []struct {
		query string
		code  int
	}{
		{"start_date=2024-01-01&end_date=2024-02-01", http.StatusOK},
		{"start_date=2024-01-01&end_date=2024-02-01&inspector_id=5", http.StatusOK},
		{"end_date=2024-02-01", http.StatusBadRequest},
		{"start_date=2024-01-01", http.StatusBadRequest},
		{"start_date=2024-02-01&end_date=2024-01-01", http.StatusBadRequest},
		{"start_date=2023-01-01&end_date=2024-06-01", http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := doRequest(svc, http.MethodGet, "/api/v1/reports/inspections?"+tc.query, "", cookie)
		require.Equal(t, tc.code, rec.Code, tc.query)
	}
}

func TestGetShips(t *testing.T) {
	fake := &storetest.Fake{
		Ships: []*domain.Ship{
			{ID: 1, Name: "Albatros", InternationalNumber: "IMO1111111", IsActive: true},
			{ID: 2, Name: "Cormoran", InternationalNumber: "IMO2222222", IsActive: false},
		},
	}
	svc := newTestAPI(t, fake)
	cookie := authCookie(t, constants.RoleOfficer)

	rec := doRequest(svc, http.MethodGet, "/api/v1/ships", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.ShipPage
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &page))
	// inactive vessels hidden by default
	require.Equal(t, int64(1), page.TotalCount)
	require.Equal(t, "Albatros", page.Ships[0].Name)

	rec = doRequest(svc, http.MethodGet, "/api/v1/ships?active_only=false", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &page))
	require.Equal(t, int64(2), page.TotalCount)

	rec = doRequest(svc, http.MethodGet, "/api/v1/ships?page_size=500", "", cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(svc, http.MethodGet, "/api/v1/ships/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(svc, http.MethodGet, "/api/v1/ships/404", "", cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(svc, http.MethodGet, "/api/v1/ships/not-a-number", "", cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLicense(t *testing.T) {
	fake := &storetest.Fake{}
	svc := newTestAPI(t, fake)
	cookie := authCookie(t, constants.RoleOfficer)

	rec := doRequest(svc, http.MethodPost, "/api/v1/licenses",
		`{"license_number":"LIC-2025-001","fisher_id":1,"issue_date":"2025-01-01","expiry_date":"2026-01-01"}`,
		cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fake.Licenses, 1)

	// expiry before issue
	rec = doRequest(svc, http.MethodPost, "/api/v1/licenses",
		`{"license_number":"LIC-2025-002","fisher_id":1,"issue_date":"2025-01-01","expiry_date":"2024-01-01"}`,
		cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// missing license number
	rec = doRequest(svc, http.MethodPost, "/api/v1/licenses", `{"fisher_id":1}`, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown status
	rec = doRequest(svc, http.MethodPost, "/api/v1/licenses",
		`{"license_number":"LIC-2025-003","fisher_id":1,"status":"Paused"}`, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInspection(t *testing.T) {
	fake := &storetest.Fake{}
	svc := newTestAPI(t, fake)

	// recording inspections is compliance-staff work
	rec := doRequest(svc, http.MethodPost, "/api/v1/inspections",
		`{"inspection_date":"2025-03-01"}`, authCookie(t, constants.RoleOfficer))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(svc, http.MethodPost, "/api/v1/inspections",
		`{"inspection_date":"2025-03-01","inspection_type":"Routine"}`,
		authCookie(t, constants.RoleInspector))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fake.Inspections, 1)

	rec = doRequest(svc, http.MethodPost, "/api/v1/inspections", `{}`,
		authCookie(t, constants.RoleInspector))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
