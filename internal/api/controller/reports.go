package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fishreg/internal/pkg/constants"
)

const (
	minReportYear    = 2000
	maxReportSpan    = 365 * 24 * time.Hour
	defaultDaysAhead = 30
	defaultMonths    = 12
)

type expiringLicensesRequest struct {
	DaysAhead int `query:"days_ahead" validate:"omitempty,gte=1,lte=365"`
}

func (c *Controller) GetExpiringLicenses(ctx echo.Context) error {
	req := new(expiringLicensesRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if req.DaysAhead == 0 {
		req.DaysAhead = defaultDaysAhead
	}

	result, err := c.reports.ExpiringLicenses(ctx.Request().Context(), req.DaysAhead)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

type amateurRankingRequest struct {
	LastMonths int `query:"last_months" validate:"omitempty,gte=1,lte=60"`
}

func (c *Controller) GetAmateurRanking(ctx echo.Context) error {
	req := new(amateurRankingRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if req.LastMonths == 0 {
		req.LastMonths = defaultMonths
	}

	result, err := c.reports.AmateurCatchRanking(ctx.Request().Context(), req.LastMonths)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

// reportYear parses and bounds the :year path param.
func reportYear(ctx echo.Context) (int, error) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return 0, constants.NewCodedError("invalid year", http.StatusBadRequest)
	}

	current := time.Now().Year()
	if year < minReportYear || year > current {
		return 0, constants.NewCodedError(
			fmt.Sprintf("year must be between %d and %d", minReportYear, current),
			http.StatusBadRequest)
	}

	return year, nil
}

func (c *Controller) GetShipCatchAnalysis(ctx echo.Context) error {
	year, err := reportYear(ctx)
	if err != nil {
		return err
	}

	result, err := c.reports.ShipCatchAnalysis(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetShipFuelEfficiency(ctx echo.Context) error {
	year, err := reportYear(ctx)
	if err != nil {
		return err
	}

	result, err := c.reports.ShipFuelEfficiency(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetInspectionsByPeriod(ctx echo.Context) error {
	startDate, err := parseDate(ctx.QueryParams().Get("start_date"))
	if err != nil {
		return constants.NewCodedError("invalid start_date", http.StatusBadRequest)
	}
	endDate, err := parseDate(ctx.QueryParams().Get("end_date"))
	if err != nil {
		return constants.NewCodedError("invalid end_date", http.StatusBadRequest)
	}

	if startDate.After(endDate) {
		return constants.NewCodedError("start_date must not be after end_date", http.StatusBadRequest)
	}
	if endDate.Sub(startDate) > maxReportSpan {
		return constants.NewCodedError("report period must not exceed 365 days", http.StatusBadRequest)
	}

	inspectorID := ctx.QueryParams().Get("inspector_id")

	result, err := c.reports.InspectionsByPeriod(ctx.Request().Context(), startDate, endDate, inspectorID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetFisherStatistics(ctx echo.Context) error {
	year, err := reportYear(ctx)
	if err != nil {
		return err
	}

	result, err := c.reports.FisherStatistics(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
