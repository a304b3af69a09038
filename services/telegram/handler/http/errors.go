package http

import (
	"github.com/labstack/echo/v4"

	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/utils"
	"github.com/greytg/bridge/services/telegram"
)

// respondError maps a usecase error to the standard error body. Domain
// errors carry their own status and code; anything else is a 500.
func respondError(c echo.Context, err error) error {
	if domainErr, ok := telegram.AsError(err); ok {
		if domainErr.RetryAfter > 0 {
			return utils.RetryErrorResponse(c, domainErr.HTTPStatus(), string(domainErr.Kind), domainErr.Message, domainErr.RetryAfter)
		}
		return utils.ErrorResponseHandler(c, domainErr.HTTPStatus(), string(domainErr.Kind), domainErr.Message)
	}

	logger.Error("Unhandled error in request",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
