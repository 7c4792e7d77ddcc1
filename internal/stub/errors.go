package stub

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// errorResponse mirrors the FastAPI error envelope.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler renders every error as {"detail": "<message>"}. Store
// errors map to their status codes; anything else is logged and hidden
// behind a 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return be.Code, fmt.Sprintf("invalid %s: %v", be.Field, be.Message)
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, errNoUser):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, errNoItem):
		return http.StatusNotFound, "Inventory item not found"
	case errors.Is(err, errNoSite):
		return http.StatusNotFound, "Warehouse not found"
	case errors.Is(err, errNoVehicle):
		return http.StatusNotFound, "Vehicle not found"
	case errors.Is(err, errNoAnomaly):
		return http.StatusNotFound, "Anomaly not found"
	case errors.Is(err, errUserExists):
		return http.StatusBadRequest, "Username already registered"
	case errors.Is(err, errUsageDown):
		return http.StatusServiceUnavailable, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
