package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fishreg/internal/pkg/constants"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (c *Controller) Login(ctx echo.Context) error {
	req := new(loginRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	user, token, err := c.auth.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, loginResponse{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}
