package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fishreg/internal/pkg/constants"
	"fishreg/internal/pkg/logger"
	"fishreg/internal/pkg/utils"
)

// RequestIDMiddleware tags the request context so log lines from deeper
// layers carry the same id.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		requestID := uuid.NewString()
		ctx.Set(constants.CtxKeyRequestID, requestID)
		ctx.SetRequest(ctx.Request().WithContext(
			logger.WithRequestID(ctx.Request().Context(), requestID)))

		return next(ctx)
	}
}

func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)
		ctx.Set(constants.CtxKeyRole, token.Role)

		return next(ctx)
	}
}

// InspectorMiddleware gates endpoints reserved for compliance staff.
func (svc *APIService) InspectorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		role, _ := ctx.Get(constants.CtxKeyRole).(string)
		if role != constants.RoleAdmin && role != constants.RoleInspector {
			return constants.ErrForbidden
		}

		return next(ctx)
	}
}
