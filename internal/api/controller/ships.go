package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fishreg/internal/pkg/constants"
	"fishreg/internal/service/registry"
)

type listShipsRequest struct {
	Search   string `query:"search"`
	Active   *bool  `query:"active_only"`
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	PageSize int    `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}

func (c *Controller) GetShips(ctx echo.Context) error {
	req := new(listShipsRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	opts := registry.ListShipsOpts{
		// inactive vessels are hidden unless asked for
		ActiveOnly: req.Active == nil || *req.Active,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if req.Search != "" {
		opts.Search = &req.Search
	}

	page, err := c.registry.ListShips(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, page)
}

func (c *Controller) GetShip(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return constants.NewCodedError("invalid ship id", http.StatusBadRequest)
	}

	ship, err := c.registry.GetShip(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ship)
}

func (c *Controller) GetFishers(ctx echo.Context) error {
	fishers, err := c.registry.ListFishers(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fishers)
}
