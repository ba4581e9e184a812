package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/constants"
	"fishreg/internal/service/registry"
)

type listInspectionsRequest struct {
	FromDate string `query:"from_date"`
	ToDate   string `query:"to_date"`
	Status   string `query:"status"`
}

func (c *Controller) GetInspections(ctx echo.Context) error {
	req := new(listInspectionsRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	opts := registry.ListInspectionsOpts{}
	if req.FromDate != "" {
		from, err := parseDate(req.FromDate)
		if err != nil {
			return constants.NewCodedError("invalid from_date", http.StatusBadRequest)
		}
		opts.FromDate = &from
	}
	if req.ToDate != "" {
		to, err := parseDate(req.ToDate)
		if err != nil {
			return constants.NewCodedError("invalid to_date", http.StatusBadRequest)
		}
		opts.ToDate = &to
	}
	if req.Status != "" {
		opts.Status = &req.Status
	}

	inspections, err := c.registry.ListInspections(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, inspections)
}

type createInspectionRequest struct {
	InspectorID    *int64  `json:"inspector_id"`
	ShipID         *int64  `json:"ship_id"`
	LicenseID      *int64  `json:"license_id"`
	InspectionDate string  `json:"inspection_date" validate:"required"`
	InspectionType string  `json:"inspection_type"`
	Location       *string `json:"location"`
	Findings       *string `json:"findings"`
	Violations     *string `json:"violations"`
	ActionsTaken   *string `json:"actions_taken"`
	Status         string  `json:"status" validate:"omitempty,oneof=Planned Completed Cancelled"`
	Notes          *string `json:"notes"`
}

func (c *Controller) CreateInspection(ctx echo.Context) error {
	req := new(createInspectionRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	date, err := parseDate(req.InspectionDate)
	if err != nil {
		return constants.NewCodedError("invalid inspection_date", http.StatusBadRequest)
	}

	id, err := c.registry.CreateInspection(ctx.Request().Context(), &domain.Inspection{
		InspectorID:    req.InspectorID,
		ShipID:         req.ShipID,
		LicenseID:      req.LicenseID,
		InspectionDate: date,
		InspectionType: req.InspectionType,
		Location:       req.Location,
		Findings:       req.Findings,
		Violations:     req.Violations,
		ActionsTaken:   req.ActionsTaken,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}
