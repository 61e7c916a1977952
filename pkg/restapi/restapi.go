package restapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/inx-app/pkg/httpserver"

	"github.com/aeroledger/aeroledger/pkg/model"
)

const (
	// ParameterAircraftID is used to identify an aircraft by its ID.
	ParameterAircraftID = "aircraftID"

	// ParameterIdentity is used to identify a user identity.
	ParameterIdentity = "identity"

	// ParameterLogIndex is used to identify a maintenance log entry by its index.
	ParameterLogIndex = "logIndex"

	// HeaderCaller carries the host-authenticated identity performing a mutation.
	HeaderCaller = "X-Ledger-Caller"
)

func ParseAircraftIDParam(c echo.Context) (model.AircraftID, error) {
	aircraftID, err := model.AircraftIDFromHexString(c.Param(ParameterAircraftID))
	if err != nil {
		return model.EmptyAircraftID, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid aircraft ID: %s", err)
	}

	return aircraftID, nil
}

func ParseIdentityParam(c echo.Context) (model.Identity, error) {
	identity, err := model.IdentityFromHexString(c.Param(ParameterIdentity))
	if err != nil {
		return model.NullIdentity, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid identity: %s", err)
	}

	return identity, nil
}

func ParseLogIndexParam(c echo.Context) (uint64, error) {
	index, err := strconv.ParseUint(c.Param(ParameterLogIndex), 10, 64)
	if err != nil {
		return 0, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid log index: %s", err)
	}

	return index, nil
}

// ParseCallerHeader extracts the host-supplied caller identity of a mutating
// request. A missing header resolves to the null identity, which no ledger
// operation accepts as an actor.
func ParseCallerHeader(c echo.Context) (model.Identity, error) {
	headerValue := c.Request().Header.Get(HeaderCaller)
	if headerValue == "" {
		return model.NullIdentity, nil
	}

	caller, err := model.IdentityFromHexString(headerValue)
	if err != nil {
		return model.NullIdentity, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid %s header: %s", HeaderCaller, err)
	}

	return caller, nil
}

// RestRouteManager tracks the registered route groups so the routes endpoint
// can list them.
type RestRouteManager struct {
	echo   *echo.Echo
	groups *shrinkingmap.ShrinkingMap[string, *echo.Group]
	routes []string
}

func NewRestRouteManager(e *echo.Echo) *RestRouteManager {
	return &RestRouteManager{
		echo:   e,
		groups: shrinkingmap.New[string, *echo.Group](),
	}
}

// AddRoute adds a route to the Routes endpoint and returns the echo group to
// register endpoints on. Registering the same route twice returns the same
// group.
func (r *RestRouteManager) AddRoute(route string) *echo.Group {
	group, created := r.groups.GetOrCreate(route, func() *echo.Group {
		return r.echo.Group("/api/" + route)
	})
	if created {
		r.routes = append(r.routes, route)
	}

	return group
}

// Routes returns the routes in registration order.
func (r *RestRouteManager) Routes() []string {
	return r.routes
}
