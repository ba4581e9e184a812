package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/constants"
	"fishreg/internal/service/registry"
)

type listLicensesRequest struct {
	Status       string `query:"status"`
	FisherID     *int64 `query:"fisher_id"`
	ShipID       *int64 `query:"ship_id"`
	ExpiringSoon bool   `query:"expiring_soon"`
}

func (c *Controller) GetLicenses(ctx echo.Context) error {
	req := new(listLicensesRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	opts := registry.ListLicensesOpts{
		FisherID:     req.FisherID,
		ShipID:       req.ShipID,
		ExpiringSoon: req.ExpiringSoon,
	}
	if req.Status != "" {
		opts.Status = &req.Status
	}

	licenses, err := c.registry.ListLicenses(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, licenses)
}

type createLicenseRequest struct {
	LicenseNumber string  `json:"license_number" validate:"required"`
	FisherID      int64   `json:"fisher_id" validate:"required"`
	ShipID        *int64  `json:"ship_id"`
	IssueDate     string  `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date"`
	Status        string  `json:"status" validate:"omitempty,oneof=Active Expired Revoked Suspended"`
	LicenseType   *string `json:"license_type"`
}

func (c *Controller) CreateLicense(ctx echo.Context) error {
	req := new(createLicenseRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	license := &domain.License{
		LicenseNumber: &req.LicenseNumber,
		FisherID:      req.FisherID,
		ShipID:        req.ShipID,
		Status:        req.Status,
		LicenseType:   req.LicenseType,
	}

	if req.IssueDate != "" {
		issued, err := parseDate(req.IssueDate)
		if err != nil {
			return constants.NewCodedError("invalid issue_date", http.StatusBadRequest)
		}
		license.IssueDate = issued
	}
	if req.ExpiryDate != nil {
		expiry, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return constants.NewCodedError("invalid expiry_date", http.StatusBadRequest)
		}
		license.ExpiryDate = &expiry
	}
	if license.ExpiryDate != nil && !license.IssueDate.IsZero() &&
		license.ExpiryDate.Before(license.IssueDate) {
		return constants.NewCodedError("expiry_date must be after issue_date", http.StatusBadRequest)
	}

	id, err := c.registry.CreateLicense(ctx.Request().Context(), license)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}
