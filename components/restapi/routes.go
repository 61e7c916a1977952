package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iotaledger/inx-app/pkg/httpserver"
)

const (
	// RouteHealth is the route for getting the liveness of the node.
	// GET returns 200 if the node is up.
	RouteHealth = "/health"

	// RouteRoutes is the route for getting the list of registered API routes.
	RouteRoutes = "/api/routes"
)

type RoutesResponse struct {
	Routes []string `json:"routes"`
}

func setupRoutes() {

	deps.Echo.GET(RouteHealth, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	deps.Echo.GET(RouteRoutes, func(c echo.Context) error {
		resp := &RoutesResponse{
			Routes: deps.RestRouteManager.Routes(),
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})
}
