package core

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/app"
	"github.com/iotaledger/inx-app/pkg/httpserver"

	"github.com/aeroledger/aeroledger/components/restapi"
	"github.com/aeroledger/aeroledger/pkg/ledger"
	restapipkg "github.com/aeroledger/aeroledger/pkg/restapi"
)

const (
	// RouteInfo is the route for getting the global ledger state.
	// GET returns the admin identity, the pause flag and the latest height.
	RouteInfo = "/info"

	// RouteAircraft is the route for getting the registry state of an aircraft.
	// GET returns the owner and the maintenance log count.
	RouteAircraft = "/aircraft/:" + restapipkg.ParameterAircraftID

	// RouteAircraftRegister is the route for registering a new aircraft.
	// POST registers the aircraft with its initial owner. Admin only.
	RouteAircraftRegister = "/aircraft"

	// RouteAircraftOwner is the route for transferring ownership of an aircraft.
	// POST moves the aircraft to a new owner. Owner only.
	RouteAircraftOwner = "/aircraft/:" + restapipkg.ParameterAircraftID + "/owner"

	// RouteAircraftRole is the route for managing a role assignment.
	// GET returns the role of the identity.
	// PUT grants a mechanic or inspector role to the identity. Owner only.
	// DELETE revokes the role assignment of the identity. Owner only.
	RouteAircraftRole = "/aircraft/:" + restapipkg.ParameterAircraftID + "/roles/:" + restapipkg.ParameterIdentity

	// RouteAircraftLogs is the route for the maintenance log of an aircraft.
	// GET returns the log count.
	// POST appends a new maintenance record and returns its index.
	RouteAircraftLogs = "/aircraft/:" + restapipkg.ParameterAircraftID + "/logs"

	// RouteAircraftLog is the route for getting a single maintenance record.
	// GET returns the record at the given index.
	RouteAircraftLog = "/aircraft/:" + restapipkg.ParameterAircraftID + "/logs/:" + restapipkg.ParameterLogIndex

	// RouteAdminPause is the route for toggling the global pause flag.
	// POST sets the flag. Admin only, callable while paused.
	RouteAdminPause = "/admin/pause"

	// RouteAdmin is the route for transferring the admin role.
	// POST replaces the admin identity. Admin only, callable while paused.
	RouteAdmin = "/admin"
)

func init() {
	Component = &app.Component{
		Name:      "CoreAPIV1",
		DepsFunc:  func(cDeps dependencies) { deps = cDeps },
		Configure: configure,
		IsEnabled: func(c *dig.Container) bool {
			return restapi.ParamsRestAPI.Enabled
		},
	}
}

var (
	Component *app.Component
	deps      dependencies
)

type dependencies struct {
	dig.In

	Ledger           *ledger.Ledger
	RestRouteManager *restapipkg.RestRouteManager
}

func configure() error {
	// check if RestAPI plugin is disabled
	if !Component.App().IsComponentEnabled(restapi.Component.Identifier()) {
		Component.LogPanicf("RestAPI plugin needs to be enabled to use the %s plugin", Component.Name)
	}

	routeGroup := deps.RestRouteManager.AddRoute("ledger/v1")

	routeGroup.GET(RouteInfo, func(c echo.Context) error {
		return httpserver.JSONResponse(c, http.StatusOK, info())
	})

	routeGroup.GET(RouteAircraft, func(c echo.Context) error {
		resp, err := aircraftByID(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	routeGroup.POST(RouteAircraftRegister, func(c echo.Context) error {
		resp, err := registerAircraft(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusCreated, resp)
	})

	routeGroup.POST(RouteAircraftOwner, func(c echo.Context) error {
		resp, err := transferOwnership(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	routeGroup.GET(RouteAircraftRole, func(c echo.Context) error {
		resp, err := roleByIdentity(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	routeGroup.PUT(RouteAircraftRole, func(c echo.Context) error {
		resp, err := addRole(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	routeGroup.DELETE(RouteAircraftRole, func(c echo.Context) error {
		if err := removeRole(c); err != nil {
			return err
		}

		return c.NoContent(http.StatusNoContent)
	})

	routeGroup.GET(RouteAircraftLogs, func(c echo.Context) error {
		resp, err := logCountByID(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	routeGroup.POST(RouteAircraftLogs, func(c echo.Context) error {
		resp, err := logMaintenance(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusCreated, resp)
	})

	routeGroup.GET(RouteAircraftLog, func(c echo.Context) error {
		resp, err := maintenanceLogByIndex(c)
		if err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, resp)
	})

	routeGroup.POST(RouteAdminPause, func(c echo.Context) error {
		if err := setPaused(c); err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, info())
	})

	routeGroup.POST(RouteAdmin, func(c echo.Context) error {
		if err := transferAdmin(c); err != nil {
			return err
		}

		return httpserver.JSONResponse(c, http.StatusOK, info())
	})

	return nil
}
