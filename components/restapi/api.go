package restapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aeroledger/aeroledger/pkg/restapi"
)

// apiMiddleware rejects every request that does not match one of the
// configured public routes. There is no token auth layer: the caller identity
// of a mutation is asserted by the host via the caller header, and operators
// restrict the exposed surface through the route allowlist.
func apiMiddleware() echo.MiddlewareFunc {
	publicRoutesRegEx, err := restapi.CompileRoutesAsRegexes(ParamsRestAPI.PublicRoutes)
	if err != nil {
		Component.LogFatal(err.Error())
	}

	matchPublic := func(c echo.Context) bool {
		loweredPath := strings.ToLower(c.Request().RequestURI)

		for _, reg := range publicRoutesRegEx {
			if reg.MatchString(loweredPath) {
				return true
			}
		}

		return false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !matchPublic(c) {
				return echo.ErrForbidden
			}

			return next(c)
		}
	}
}
