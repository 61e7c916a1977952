package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore/mapdb"

	"github.com/aeroledger/aeroledger/pkg/ledger"
	"github.com/aeroledger/aeroledger/pkg/ledger/tpkg"
	"github.com/aeroledger/aeroledger/pkg/model"
)

func newTestLedger(t *testing.T) (*ledger.Ledger, model.Identity) {
	t.Helper()

	admin := tpkg.RandIdentity()

	return ledger.New(mapdb.NewMapDB(), ledger.WithGenesisAdmin(admin)), admin
}

func TestUnregisteredAircraftDefaults(t *testing.T) {
	l, _ := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()

	count, err := l.LogCount(aircraftID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	_, exists, err := l.Owner(aircraftID)
	require.NoError(t, err)
	require.False(t, exists)

	role, err := l.UserRole(aircraftID, tpkg.RandIdentity())
	require.NoError(t, err)
	require.Equal(t, model.RoleNone, role)

	_, err = l.MaintenanceLog(aircraftID, 0)
	require.ErrorIs(t, err, ledger.ErrLogNotFound)
}

func TestRegisterAircraft(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	registeredOwner, exists, err := l.Owner(aircraftID)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, owner, registeredOwner)

	role, err := l.UserRole(aircraftID, owner)
	require.NoError(t, err)
	require.Equal(t, model.RoleOwner, role)

	// a second registration is always rejected, regardless of caller or owner
	require.ErrorIs(t, l.RegisterAircraft(admin, aircraftID, owner), ledger.ErrAlreadyRegistered)
	require.ErrorIs(t, l.RegisterAircraft(admin, aircraftID, tpkg.RandIdentity()), ledger.ErrAlreadyRegistered)
}

func TestRegisterAircraftPreconditions(t *testing.T) {
	l, admin := newTestLedger(t)

	require.ErrorIs(t, l.RegisterAircraft(tpkg.RandIdentity(), tpkg.RandAircraftID(), tpkg.RandIdentity()), ledger.ErrNotAuthorized)
	require.ErrorIs(t, l.RegisterAircraft(admin, tpkg.RandAircraftID(), model.NullIdentity), ledger.ErrNullIdentity)

	// precondition order: a non-admin caller with an already used ID fails the
	// admin check first
	aircraftID := tpkg.RandAircraftID()
	require.NoError(t, l.RegisterAircraft(admin, aircraftID, tpkg.RandIdentity()))
	require.ErrorIs(t, l.RegisterAircraft(tpkg.RandIdentity(), aircraftID, tpkg.RandIdentity()), ledger.ErrNotAuthorized)
}

func TestTransferOwnership(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()
	newOwner := tpkg.RandIdentity()

	require.ErrorIs(t, l.TransferOwnership(owner, tpkg.RandAircraftID(), newOwner), ledger.ErrNotRegistered)

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	require.ErrorIs(t, l.TransferOwnership(tpkg.RandIdentity(), aircraftID, newOwner), ledger.ErrNotAuthorized)
	require.ErrorIs(t, l.TransferOwnership(admin, aircraftID, newOwner), ledger.ErrNotAuthorized)
	require.ErrorIs(t, l.TransferOwnership(owner, aircraftID, model.NullIdentity), ledger.ErrNullIdentity)

	require.NoError(t, l.TransferOwnership(owner, aircraftID, newOwner))

	currentOwner, exists, err := l.Owner(aircraftID)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, newOwner, currentOwner)

	role, err := l.UserRole(aircraftID, newOwner)
	require.NoError(t, err)
	require.Equal(t, model.RoleOwner, role)

	// the previous owner's role row is removed in the same commit, so no
	// stale owner permissions survive the transfer
	role, err = l.UserRole(aircraftID, owner)
	require.NoError(t, err)
	require.Equal(t, model.RoleNone, role)

	require.ErrorIs(t, l.TransferOwnership(owner, aircraftID, owner), ledger.ErrNotAuthorized)

	_, err = l.LogMaintenance(owner, aircraftID, []byte("post-transfer entry"))
	require.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestRoleManagement(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()
	mechanic := tpkg.RandIdentity()

	require.ErrorIs(t, l.AddRole(owner, tpkg.RandAircraftID(), mechanic, model.RoleMechanic), ledger.ErrNotRegistered)

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	require.ErrorIs(t, l.AddRole(tpkg.RandIdentity(), aircraftID, mechanic, model.RoleMechanic), ledger.ErrNotAuthorized)
	require.ErrorIs(t, l.AddRole(owner, aircraftID, mechanic, model.RoleOwner), ledger.ErrInvalidRole)
	require.ErrorIs(t, l.AddRole(owner, aircraftID, mechanic, model.RoleNone), ledger.ErrInvalidRole)
	require.ErrorIs(t, l.AddRole(owner, aircraftID, model.NullIdentity, model.RoleMechanic), ledger.ErrNullIdentity)

	require.NoError(t, l.AddRole(owner, aircraftID, mechanic, model.RoleMechanic))

	role, err := l.UserRole(aircraftID, mechanic)
	require.NoError(t, err)
	require.Equal(t, model.RoleMechanic, role)

	// a later grant overwrites the prior assignment
	require.NoError(t, l.AddRole(owner, aircraftID, mechanic, model.RoleInspector))

	role, err = l.UserRole(aircraftID, mechanic)
	require.NoError(t, err)
	require.Equal(t, model.RoleInspector, role)

	// the current owner cannot be removed through role removal
	require.ErrorIs(t, l.RemoveRole(owner, aircraftID, owner), ledger.ErrNotAuthorized)

	ownerRole, err := l.UserRole(aircraftID, owner)
	require.NoError(t, err)
	require.Equal(t, model.RoleOwner, ownerRole)

	require.NoError(t, l.RemoveRole(owner, aircraftID, mechanic))

	role, err = l.UserRole(aircraftID, mechanic)
	require.NoError(t, err)
	require.Equal(t, model.RoleNone, role)

	// removing an absent assignment is not an error
	require.NoError(t, l.RemoveRole(owner, aircraftID, mechanic))
}

func TestLogMaintenanceAuthorizationBoundary(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()
	mechanic := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	_, err := l.LogMaintenance(mechanic, aircraftID, []byte("unauthorized"))
	require.ErrorIs(t, err, ledger.ErrNotAuthorized)

	require.NoError(t, l.AddRole(owner, aircraftID, mechanic, model.RoleMechanic))

	index, err := l.LogMaintenance(mechanic, aircraftID, []byte("oil change"))
	require.NoError(t, err)
	require.EqualValues(t, 0, index)

	require.NoError(t, l.RemoveRole(owner, aircraftID, mechanic))

	_, err = l.LogMaintenance(mechanic, aircraftID, []byte("oil change"))
	require.ErrorIs(t, err, ledger.ErrNotAuthorized)

	// the admin holds no implicit maintenance role
	_, err = l.LogMaintenance(admin, aircraftID, []byte("admin entry"))
	require.ErrorIs(t, err, ledger.ErrNotAuthorized)
}

func TestLogMaintenanceDetailsBoundaries(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	_, err := l.LogMaintenance(owner, aircraftID, nil)
	require.ErrorIs(t, err, ledger.ErrInvalidDetails)

	_, err = l.LogMaintenance(owner, aircraftID, tpkg.RandDetails(model.MaxDetailsLength+1))
	require.ErrorIs(t, err, ledger.ErrInvalidDetails)

	index, err := l.LogMaintenance(owner, aircraftID, tpkg.RandDetails(1))
	require.NoError(t, err)
	require.EqualValues(t, 0, index)

	index, err = l.LogMaintenance(owner, aircraftID, tpkg.RandDetails(model.MaxDetailsLength))
	require.NoError(t, err)
	require.EqualValues(t, 1, index)
}

func TestLogMaintenancePreconditionOrder(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()
	stranger := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	// the payload is validated before the role check: an unauthorized caller
	// with a bad payload sees the payload error
	_, err := l.LogMaintenance(stranger, aircraftID, nil)
	require.ErrorIs(t, err, ledger.ErrInvalidDetails)

	// an unknown aircraft beats the payload check
	_, err = l.LogMaintenance(stranger, tpkg.RandAircraftID(), nil)
	require.ErrorIs(t, err, ledger.ErrNotRegistered)
}

func TestLogMaintenanceIndicesAndRoundTrip(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	const entries = 5
	details := make([][]byte, entries)
	for i := 0; i < entries; i++ {
		details[i] = tpkg.RandDetails(16 + i)

		index, err := l.LogMaintenance(owner, aircraftID, details[i])
		require.NoError(t, err)
		require.EqualValues(t, i, index)

		count, err := l.LogCount(aircraftID)
		require.NoError(t, err)
		require.EqualValues(t, i+1, count)
	}

	var previousHeight model.Height
	for i := 0; i < entries; i++ {
		record, err := l.MaintenanceLog(aircraftID, uint64(i))
		require.NoError(t, err)
		require.Equal(t, owner, record.Performer)
		require.Equal(t, details[i], record.Details)
		require.Greater(t, record.Height, previousHeight)
		previousHeight = record.Height
	}

	_, err := l.MaintenanceLog(aircraftID, entries)
	require.ErrorIs(t, err, ledger.ErrLogNotFound)

	// stream yields the full log in append order
	var streamed int
	require.NoError(t, l.StreamMaintenanceLog(aircraftID, func(index uint64, record *model.MaintenanceRecord) error {
		require.EqualValues(t, streamed, index)
		require.Equal(t, details[index], record.Details)
		streamed++

		return nil
	}))
	require.Equal(t, entries, streamed)
}

func TestPauseGate(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()
	mechanic := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))
	require.NoError(t, l.AddRole(owner, aircraftID, mechanic, model.RoleMechanic))

	require.ErrorIs(t, l.SetPaused(owner, true), ledger.ErrNotAuthorized)
	require.NoError(t, l.SetPaused(admin, true))
	require.True(t, l.IsPaused())

	// every state mutation fails while paused, regardless of privilege
	require.ErrorIs(t, l.RegisterAircraft(admin, tpkg.RandAircraftID(), owner), ledger.ErrPaused)
	require.ErrorIs(t, l.TransferOwnership(owner, aircraftID, mechanic), ledger.ErrPaused)
	require.ErrorIs(t, l.AddRole(owner, aircraftID, tpkg.RandIdentity(), model.RoleInspector), ledger.ErrPaused)
	require.ErrorIs(t, l.RemoveRole(owner, aircraftID, mechanic), ledger.ErrPaused)

	_, err := l.LogMaintenance(mechanic, aircraftID, []byte("while paused"))
	require.ErrorIs(t, err, ledger.ErrPaused)

	// queries stay available
	count, err := l.LogCount(aircraftID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	// the admin controls remain callable while paused
	newAdmin := tpkg.RandIdentity()
	require.NoError(t, l.TransferAdmin(admin, newAdmin))
	require.NoError(t, l.SetPaused(newAdmin, false))
	require.False(t, l.IsPaused())

	_, err = l.LogMaintenance(mechanic, aircraftID, []byte("after unpause"))
	require.NoError(t, err)
}

func TestTransferAdmin(t *testing.T) {
	l, admin := newTestLedger(t)

	require.ErrorIs(t, l.TransferAdmin(tpkg.RandIdentity(), tpkg.RandIdentity()), ledger.ErrNotAuthorized)
	require.ErrorIs(t, l.TransferAdmin(admin, model.NullIdentity), ledger.ErrNullIdentity)

	newAdmin := tpkg.RandIdentity()
	require.NoError(t, l.TransferAdmin(admin, newAdmin))
	require.Equal(t, newAdmin, l.Admin())

	// the old admin lost its privilege
	require.ErrorIs(t, l.RegisterAircraft(admin, tpkg.RandAircraftID(), tpkg.RandIdentity()), ledger.ErrNotAuthorized)
	require.NoError(t, l.RegisterAircraft(newAdmin, tpkg.RandAircraftID(), tpkg.RandIdentity()))
}

func TestEvents(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()
	mechanic := tpkg.RandIdentity()

	var registered, logged int
	l.Events().AircraftRegistered.Hook(func(event *ledger.AircraftRegisteredEvent) {
		require.Equal(t, aircraftID, event.AircraftID)
		require.Equal(t, owner, event.Owner)
		registered++
	})
	l.Events().MaintenanceLogged.Hook(func(event *ledger.MaintenanceLoggedEvent) {
		require.Equal(t, aircraftID, event.AircraftID)
		require.Equal(t, mechanic, event.Performer)
		require.EqualValues(t, 0, event.Index)
		logged++
	})

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))
	require.NoError(t, l.AddRole(owner, aircraftID, mechanic, model.RoleMechanic))

	_, err := l.LogMaintenance(mechanic, aircraftID, []byte("inspection"))
	require.NoError(t, err)

	require.Equal(t, 1, registered)
	require.Equal(t, 1, logged)

	// failed operations never fire events
	require.Error(t, l.RegisterAircraft(admin, aircraftID, owner))
	require.Equal(t, 1, registered)
}

func TestFailedOperationLeavesStateUntouched(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	heightBefore := l.LatestHeight()

	_, err := l.LogMaintenance(owner, aircraftID, nil)
	require.ErrorIs(t, err, ledger.ErrInvalidDetails)

	count, err := l.LogCount(aircraftID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
	require.Equal(t, heightBefore, l.LatestHeight())
}

func TestPersistenceAcrossRestart(t *testing.T) {
	store := mapdb.NewMapDB()
	admin := tpkg.RandIdentity()

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()

	l := ledger.New(store, ledger.WithGenesisAdmin(admin))
	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	_, err := l.LogMaintenance(owner, aircraftID, []byte("pre-restart"))
	require.NoError(t, err)

	// a later genesis admin option never overwrites the persisted admin
	reopened := ledger.New(store, ledger.WithGenesisAdmin(tpkg.RandIdentity()))
	require.Equal(t, admin, reopened.Admin())

	count, err := reopened.LogCount(aircraftID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	record, err := reopened.MaintenanceLog(aircraftID, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("pre-restart"), record.Details)
}

func TestHostSuppliedHeight(t *testing.T) {
	var hostHeight model.Height = 41

	admin := tpkg.RandIdentity()
	l := ledger.New(mapdb.NewMapDB(),
		ledger.WithGenesisAdmin(admin),
		ledger.WithHeightFunc(func() model.Height {
			hostHeight++

			return hostHeight
		}),
	)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))

	_, err := l.LogMaintenance(owner, aircraftID, []byte("host height"))
	require.NoError(t, err)

	record, err := l.MaintenanceLog(aircraftID, 0)
	require.NoError(t, err)
	require.EqualValues(t, 43, record.Height)
	require.EqualValues(t, 43, l.LatestHeight())
}

func TestAuditScenario(t *testing.T) {
	l, admin := newTestLedger(t)

	aircraftID := tpkg.RandAircraftID()
	owner := tpkg.RandIdentity()
	mechanic := tpkg.RandIdentity()

	require.NoError(t, l.RegisterAircraft(admin, aircraftID, owner))
	require.NoError(t, l.AddRole(owner, aircraftID, mechanic, model.RoleMechanic))

	index, err := l.LogMaintenance(mechanic, aircraftID, []byte("Test"))
	require.NoError(t, err)
	require.EqualValues(t, 0, index)

	count, err := l.LogCount(aircraftID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	index, err = l.LogMaintenance(owner, aircraftID, []byte("second entry"))
	require.NoError(t, err)
	require.EqualValues(t, 1, index)

	count, err = l.LogCount(aircraftID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	_, err = l.MaintenanceLog(aircraftID, 5)
	require.True(t, ierrors.Is(err, ledger.ErrLogNotFound))
}
