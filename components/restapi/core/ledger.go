package core

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/inx-app/pkg/httpserver"

	"github.com/aeroledger/aeroledger/pkg/ledger"
	"github.com/aeroledger/aeroledger/pkg/model"
	restapipkg "github.com/aeroledger/aeroledger/pkg/restapi"
)

// mapLedgerError translates the ledger error taxonomy into HTTP errors in one
// place, so every handler reports the same status for the same condition.
func mapLedgerError(err error) error {
	switch {
	case ierrors.Is(err, ledger.ErrNotAuthorized):
		return ierrors.Wrap(echo.ErrForbidden, err.Error())
	case ierrors.Is(err, ledger.ErrPaused):
		return echo.NewHTTPError(http.StatusLocked, err.Error())
	case ierrors.Is(err, ledger.ErrNotRegistered), ierrors.Is(err, ledger.ErrLogNotFound):
		return ierrors.Wrap(echo.ErrNotFound, err.Error())
	case ierrors.Is(err, ledger.ErrAlreadyRegistered):
		return ierrors.Wrap(echo.ErrConflict, err.Error())
	case ierrors.Is(err, ledger.ErrInvalidRole), ierrors.Is(err, ledger.ErrInvalidDetails), ierrors.Is(err, ledger.ErrNullIdentity):
		return ierrors.Wrap(httpserver.ErrInvalidParameter, err.Error())
	default:
		return err
	}
}

func info() *InfoResponse {
	return &InfoResponse{
		Admin:        deps.Ledger.Admin().ToHex(),
		Paused:       deps.Ledger.IsPaused(),
		LatestHeight: uint64(deps.Ledger.LatestHeight()),
	}
}

func aircraftByID(c echo.Context) (*AircraftResponse, error) {
	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return nil, err
	}

	owner, exists, err := deps.Ledger.Owner(aircraftID)
	if err != nil {
		return nil, mapLedgerError(err)
	}
	if !exists {
		return nil, ierrors.Wrapf(echo.ErrNotFound, "aircraft %s is not registered", aircraftID.ToHex())
	}

	logCount, err := deps.Ledger.LogCount(aircraftID)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	return &AircraftResponse{
		AircraftID: aircraftID.ToHex(),
		Owner:      owner.ToHex(),
		LogCount:   logCount,
	}, nil
}

func roleByIdentity(c echo.Context) (*RoleResponse, error) {
	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return nil, err
	}

	identity, err := restapipkg.ParseIdentityParam(c)
	if err != nil {
		return nil, err
	}

	role, err := deps.Ledger.UserRole(aircraftID, identity)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	return &RoleResponse{
		AircraftID: aircraftID.ToHex(),
		Identity:   identity.ToHex(),
		Role:       role.String(),
	}, nil
}

func logCountByID(c echo.Context) (*LogCountResponse, error) {
	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return nil, err
	}

	logCount, err := deps.Ledger.LogCount(aircraftID)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	return &LogCountResponse{
		AircraftID: aircraftID.ToHex(),
		LogCount:   logCount,
	}, nil
}

func maintenanceLogByIndex(c echo.Context) (*MaintenanceLogResponse, error) {
	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return nil, err
	}

	index, err := restapipkg.ParseLogIndexParam(c)
	if err != nil {
		return nil, err
	}

	record, err := deps.Ledger.MaintenanceLog(aircraftID, index)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	return &MaintenanceLogResponse{
		AircraftID: aircraftID.ToHex(),
		Index:      index,
		Height:     uint64(record.Height),
		Performer:  record.Performer.ToHex(),
		Details:    record.Details,
	}, nil
}

func registerAircraft(c echo.Context) (*AircraftResponse, error) {
	caller, err := restapipkg.ParseCallerHeader(c)
	if err != nil {
		return nil, err
	}

	request := &RegisterAircraftRequest{}
	if err := c.Bind(request); err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid request body: %s", err)
	}

	aircraftID, err := model.AircraftIDFromHexString(request.AircraftID)
	if err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid aircraft ID: %s", err)
	}

	owner, err := model.IdentityFromHexString(request.Owner)
	if err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid owner: %s", err)
	}

	if err := deps.Ledger.RegisterAircraft(caller, aircraftID, owner); err != nil {
		return nil, mapLedgerError(err)
	}

	return &AircraftResponse{
		AircraftID: aircraftID.ToHex(),
		Owner:      owner.ToHex(),
		LogCount:   0,
	}, nil
}

func transferOwnership(c echo.Context) (*AircraftResponse, error) {
	caller, err := restapipkg.ParseCallerHeader(c)
	if err != nil {
		return nil, err
	}

	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return nil, err
	}

	request := &TransferOwnershipRequest{}
	if err := c.Bind(request); err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid request body: %s", err)
	}

	newOwner, err := model.IdentityFromHexString(request.NewOwner)
	if err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid new owner: %s", err)
	}

	if err := deps.Ledger.TransferOwnership(caller, aircraftID, newOwner); err != nil {
		return nil, mapLedgerError(err)
	}

	logCount, err := deps.Ledger.LogCount(aircraftID)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	return &AircraftResponse{
		AircraftID: aircraftID.ToHex(),
		Owner:      newOwner.ToHex(),
		LogCount:   logCount,
	}, nil
}

func addRole(c echo.Context) (*RoleResponse, error) {
	caller, err := restapipkg.ParseCallerHeader(c)
	if err != nil {
		return nil, err
	}

	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return nil, err
	}

	identity, err := restapipkg.ParseIdentityParam(c)
	if err != nil {
		return nil, err
	}

	request := &AddRoleRequest{}
	if err := c.Bind(request); err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid request body: %s", err)
	}

	role, err := model.RoleFromString(request.Role)
	if err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid role: %s", err)
	}

	if err := deps.Ledger.AddRole(caller, aircraftID, identity, role); err != nil {
		return nil, mapLedgerError(err)
	}

	return &RoleResponse{
		AircraftID: aircraftID.ToHex(),
		Identity:   identity.ToHex(),
		Role:       role.String(),
	}, nil
}

func removeRole(c echo.Context) error {
	caller, err := restapipkg.ParseCallerHeader(c)
	if err != nil {
		return err
	}

	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return err
	}

	identity, err := restapipkg.ParseIdentityParam(c)
	if err != nil {
		return err
	}

	if err := deps.Ledger.RemoveRole(caller, aircraftID, identity); err != nil {
		return mapLedgerError(err)
	}

	return nil
}

func logMaintenance(c echo.Context) (*LogMaintenanceResponse, error) {
	caller, err := restapipkg.ParseCallerHeader(c)
	if err != nil {
		return nil, err
	}

	aircraftID, err := restapipkg.ParseAircraftIDParam(c)
	if err != nil {
		return nil, err
	}

	request := &LogMaintenanceRequest{}
	if err := c.Bind(request); err != nil {
		return nil, ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid request body: %s", err)
	}

	index, err := deps.Ledger.LogMaintenance(caller, aircraftID, request.Details)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	return &LogMaintenanceResponse{
		AircraftID: aircraftID.ToHex(),
		Index:      index,
	}, nil
}

func setPaused(c echo.Context) error {
	caller, err := restapipkg.ParseCallerHeader(c)
	if err != nil {
		return err
	}

	request := &SetPausedRequest{}
	if err := c.Bind(request); err != nil {
		return ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid request body: %s", err)
	}

	if err := deps.Ledger.SetPaused(caller, request.Paused); err != nil {
		return mapLedgerError(err)
	}

	return nil
}

func transferAdmin(c echo.Context) error {
	caller, err := restapipkg.ParseCallerHeader(c)
	if err != nil {
		return err
	}

	request := &TransferAdminRequest{}
	if err := c.Bind(request); err != nil {
		return ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid request body: %s", err)
	}

	newAdmin, err := model.IdentityFromHexString(request.NewAdmin)
	if err != nil {
		return ierrors.Wrapf(httpserver.ErrInvalidParameter, "invalid new admin: %s", err)
	}

	if err := deps.Ledger.TransferAdmin(caller, newAdmin); err != nil {
		return mapLedgerError(err)
	}

	return nil
}
