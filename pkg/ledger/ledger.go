package ledger

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/runtime/syncutils"

	"github.com/aeroledger/aeroledger/pkg/model"
)

// Ledger is the access-controlled, append-only maintenance-log ledger for
// aircraft assets. Every mutating operation is atomic: it either commits all
// of its state changes in one batch or returns an error with the state
// untouched. Mutations are serialized by the ledger lock; queries are public
// and never mutate state.
type Ledger struct {
	store      kvstore.KVStore
	ledgerLock syncutils.RWMutex

	events *Events

	// optsGenesisAdmin is written as the admin identity on first start of an
	// empty ledger.
	optsGenesisAdmin model.Identity

	// optsHeightFunc lets a host environment supply the height counter
	// recorded on mutations. Defaults to the ledger's own persistent
	// sequence counter.
	optsHeightFunc func() model.Height
}

// New creates a ledger on top of the given KV store.
func New(store kvstore.KVStore, opts ...options.Option[Ledger]) *Ledger {
	return options.Apply(&Ledger{
		store:  store,
		events: NewEvents(),
	}, opts, func(l *Ledger) {
		if !l.optsGenesisAdmin.IsNull() && l.readAdminWithoutLocking().IsNull() {
			if err := l.store.Set(settingsKey(settingsAdminKey), l.optsGenesisAdmin[:]); err != nil {
				panic(err)
			}
		}
	})
}

// WithGenesisAdmin sets the admin identity an empty ledger starts with.
func WithGenesisAdmin(admin model.Identity) options.Option[Ledger] {
	return func(l *Ledger) {
		l.optsGenesisAdmin = admin
	}
}

// WithHeightFunc injects the host-supplied height counter. The function must
// return monotonically non-decreasing values.
func WithHeightFunc(heightFunc func() model.Height) options.Option[Ledger] {
	return func(l *Ledger) {
		l.optsHeightFunc = heightFunc
	}
}

// Events returns the domain events of the ledger.
func (l *Ledger) Events() *Events {
	return l.events
}

// Admin returns the current admin identity.
func (l *Ledger) Admin() model.Identity {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	return l.readAdminWithoutLocking()
}

// IsPaused returns the global pause flag.
func (l *Ledger) IsPaused() bool {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	return l.readPausedWithoutLocking()
}

// LatestHeight returns the height recorded by the most recent mutation.
func (l *Ledger) LatestHeight() model.Height {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	return l.readHeightWithoutLocking()
}

// Owner returns the owner of the given aircraft, or exists=false if the
// aircraft is not registered.
func (l *Ledger) Owner(aircraftID model.AircraftID) (owner model.Identity, exists bool, err error) {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	aircraft, exists, err := l.readAircraftWithoutLocking(aircraftID)
	if err != nil || !exists {
		return model.NullIdentity, false, err
	}

	return aircraft.Owner, true, nil
}

// LogCount returns the number of maintenance log entries of the given
// aircraft, 0 if it is not registered.
func (l *Ledger) LogCount(aircraftID model.AircraftID) (uint64, error) {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	aircraft, exists, err := l.readAircraftWithoutLocking(aircraftID)
	if err != nil || !exists {
		return 0, err
	}

	return aircraft.LogCount, nil
}

// UserRole returns the role assigned to the user for the given aircraft,
// model.RoleNone if there is no assignment.
func (l *Ledger) UserRole(aircraftID model.AircraftID, user model.Identity) (model.Role, error) {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	return l.readRoleWithoutLocking(aircraftID, user)
}

// MaintenanceLog returns the log entry at the given index, ErrLogNotFound if
// no entry exists at that (aircraft, index) key.
func (l *Ledger) MaintenanceLog(aircraftID model.AircraftID, index uint64) (*model.MaintenanceRecord, error) {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	return l.readMaintenanceRecordWithoutLocking(aircraftID, index)
}

// SetPaused toggles the global pause flag. Only the admin may call this; it
// remains callable while paused.
func (l *Ledger) SetPaused(caller model.Identity, pause bool) error {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	if caller != l.readAdminWithoutLocking() {
		return ierrors.Wrap(ErrNotAuthorized, "only the admin may pause")
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := storePaused(pause, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := l.advanceHeight(mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := mutations.Commit(); err != nil {
		return err
	}

	l.events.PauseFlagUpdated.Trigger(&PauseFlagUpdatedEvent{Paused: pause})

	return nil
}

// TransferAdmin replaces the admin identity. Only the admin may call this;
// it remains callable while paused.
func (l *Ledger) TransferAdmin(caller model.Identity, newAdmin model.Identity) error {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	previousAdmin := l.readAdminWithoutLocking()
	if caller != previousAdmin {
		return ierrors.Wrap(ErrNotAuthorized, "only the admin may transfer the admin role")
	}
	if newAdmin.IsNull() {
		return ierrors.Wrap(ErrNullIdentity, "the admin cannot be the null identity")
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := storeAdmin(newAdmin, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := l.advanceHeight(mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := mutations.Commit(); err != nil {
		return err
	}

	l.events.AdminTransferred.Trigger(&AdminTransferredEvent{
		PreviousAdmin: previousAdmin,
		NewAdmin:      newAdmin,
	})

	return nil
}

// RegisterAircraft creates a new aircraft with the given initial owner.
// Admin only.
func (l *Ledger) RegisterAircraft(caller model.Identity, aircraftID model.AircraftID, initialOwner model.Identity) error {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	if err := l.ensureNotPausedWithoutLocking(); err != nil {
		return err
	}
	if caller != l.readAdminWithoutLocking() {
		return ierrors.Wrap(ErrNotAuthorized, "only the admin may register aircraft")
	}
	if _, exists, err := l.readAircraftWithoutLocking(aircraftID); err != nil {
		return err
	} else if exists {
		return ierrors.Wrapf(ErrAlreadyRegistered, "aircraft %s", aircraftID)
	}
	if initialOwner.IsNull() {
		return ierrors.Wrap(ErrNullIdentity, "the owner cannot be the null identity")
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := storeAircraft(aircraftID, &model.Aircraft{Owner: initialOwner, LogCount: 0}, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := storeRole(aircraftID, initialOwner, model.RoleOwner, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := l.advanceHeight(mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := mutations.Commit(); err != nil {
		return err
	}

	l.events.AircraftRegistered.Trigger(&AircraftRegisteredEvent{
		AircraftID: aircraftID,
		Owner:      initialOwner,
	})

	return nil
}

// TransferOwnership moves the aircraft to a new owner. Only the current
// owner may call this. The previous owner's role row is removed in the same
// commit, so a stale owner assignment can never outlive the transfer.
func (l *Ledger) TransferOwnership(caller model.Identity, aircraftID model.AircraftID, newOwner model.Identity) error {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	if err := l.ensureNotPausedWithoutLocking(); err != nil {
		return err
	}

	aircraft, exists, err := l.readAircraftWithoutLocking(aircraftID)
	if err != nil {
		return err
	}
	if !exists {
		return ierrors.Wrapf(ErrNotRegistered, "aircraft %s", aircraftID)
	}
	if hasRole, err := l.hasRoleWithoutLocking(aircraftID, caller, model.RoleOwner); err != nil {
		return err
	} else if !hasRole {
		return ierrors.Wrap(ErrNotAuthorized, "only the owner may transfer ownership")
	}
	if newOwner.IsNull() {
		return ierrors.Wrap(ErrNullIdentity, "the owner cannot be the null identity")
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	previousOwner := aircraft.Owner
	aircraft.Owner = newOwner

	if err := storeAircraft(aircraftID, aircraft, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if previousOwner != newOwner {
		if err := deleteRole(aircraftID, previousOwner, mutations); err != nil {
			mutations.Cancel()

			return err
		}
	}

	if err := storeRole(aircraftID, newOwner, model.RoleOwner, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := l.advanceHeight(mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := mutations.Commit(); err != nil {
		return err
	}

	l.events.OwnershipTransferred.Trigger(&OwnershipTransferredEvent{
		AircraftID:    aircraftID,
		PreviousOwner: previousOwner,
		NewOwner:      newOwner,
	})

	return nil
}

// AddRole grants a mechanic or inspector role for the aircraft to the user,
// overwriting any prior assignment. Only the owner may call this.
func (l *Ledger) AddRole(caller model.Identity, aircraftID model.AircraftID, user model.Identity, role model.Role) error {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	if err := l.ensureNotPausedWithoutLocking(); err != nil {
		return err
	}

	if _, exists, err := l.readAircraftWithoutLocking(aircraftID); err != nil {
		return err
	} else if !exists {
		return ierrors.Wrapf(ErrNotRegistered, "aircraft %s", aircraftID)
	}
	if hasRole, err := l.hasRoleWithoutLocking(aircraftID, caller, model.RoleOwner); err != nil {
		return err
	} else if !hasRole {
		return ierrors.Wrap(ErrNotAuthorized, "only the owner may grant roles")
	}
	if !role.Grantable() {
		return ierrors.Wrapf(ErrInvalidRole, "role %s", role)
	}
	if user.IsNull() {
		return ierrors.Wrap(ErrNullIdentity, "the role target cannot be the null identity")
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := storeRole(aircraftID, user, role, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := l.advanceHeight(mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := mutations.Commit(); err != nil {
		return err
	}

	l.events.RoleAdded.Trigger(&RoleAddedEvent{
		AircraftID: aircraftID,
		User:       user,
		Role:       role,
	})

	return nil
}

// RemoveRole deletes the user's role assignment for the aircraft. Only the
// owner may call this, and the current owner cannot be removed this way.
func (l *Ledger) RemoveRole(caller model.Identity, aircraftID model.AircraftID, user model.Identity) error {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	if err := l.ensureNotPausedWithoutLocking(); err != nil {
		return err
	}

	if _, exists, err := l.readAircraftWithoutLocking(aircraftID); err != nil {
		return err
	} else if !exists {
		return ierrors.Wrapf(ErrNotRegistered, "aircraft %s", aircraftID)
	}
	if hasRole, err := l.hasRoleWithoutLocking(aircraftID, caller, model.RoleOwner); err != nil {
		return err
	} else if !hasRole {
		return ierrors.Wrap(ErrNotAuthorized, "only the owner may revoke roles")
	}
	if targetRole, err := l.readRoleWithoutLocking(aircraftID, user); err != nil {
		return err
	} else if targetRole == model.RoleOwner {
		return ierrors.Wrap(ErrNotAuthorized, "the owner role can only change via ownership transfer")
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return err
	}

	if err := deleteRole(aircraftID, user, mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := l.advanceHeight(mutations); err != nil {
		mutations.Cancel()

		return err
	}

	if err := mutations.Commit(); err != nil {
		return err
	}

	l.events.RoleRemoved.Trigger(&RoleRemovedEvent{
		AircraftID: aircraftID,
		User:       user,
	})

	return nil
}

// LogMaintenance appends a maintenance record for the aircraft and returns
// its index. The payload is validated before the role check; the order is
// externally observable and must not change.
func (l *Ledger) LogMaintenance(caller model.Identity, aircraftID model.AircraftID, details []byte) (index uint64, err error) {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	if err := l.ensureNotPausedWithoutLocking(); err != nil {
		return 0, err
	}

	aircraft, exists, err := l.readAircraftWithoutLocking(aircraftID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ierrors.Wrapf(ErrNotRegistered, "aircraft %s", aircraftID)
	}
	if len(details) == 0 || len(details) > model.MaxDetailsLength {
		return 0, ierrors.Wrapf(ErrInvalidDetails, "got %d bytes, want [1, %d]", len(details), model.MaxDetailsLength)
	}
	if err := l.ensureMaintenanceRoleWithoutLocking(aircraftID, caller); err != nil {
		return 0, err
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return 0, err
	}

	index = aircraft.LogCount
	height := l.nextHeight()

	record := &model.MaintenanceRecord{
		Height:    height,
		Performer: caller,
		Details:   details,
	}

	if err := storeMaintenanceRecord(aircraftID, index, record, mutations); err != nil {
		mutations.Cancel()

		return 0, err
	}

	aircraft.LogCount++
	if err := storeAircraft(aircraftID, aircraft, mutations); err != nil {
		mutations.Cancel()

		return 0, err
	}

	if err := storeHeight(height, mutations); err != nil {
		mutations.Cancel()

		return 0, err
	}

	if err := mutations.Commit(); err != nil {
		return 0, err
	}

	l.events.MaintenanceLogged.Trigger(&MaintenanceLoggedEvent{
		AircraftID: aircraftID,
		Index:      index,
		Height:     height,
		Performer:  caller,
	})

	return index, nil
}

// Shutdown flushes the underlying store.
func (l *Ledger) Shutdown() {
	l.ledgerLock.Lock()
	defer l.ledgerLock.Unlock()

	if err := l.store.Flush(); err != nil {
		panic(err)
	}
}

func (l *Ledger) ensureNotPausedWithoutLocking() error {
	if l.readPausedWithoutLocking() {
		return ErrPaused
	}

	return nil
}

// ensureMaintenanceRoleWithoutLocking checks that the caller holds any of
// the roles allowed to append maintenance records.
func (l *Ledger) ensureMaintenanceRoleWithoutLocking(aircraftID model.AircraftID, caller model.Identity) error {
	role, err := l.readRoleWithoutLocking(aircraftID, caller)
	if err != nil {
		return err
	}

	switch role {
	case model.RoleOwner, model.RoleMechanic, model.RoleInspector:
		return nil
	default:
		return ierrors.Wrapf(ErrNotAuthorized, "%s holds no maintenance role for aircraft %s", caller, aircraftID)
	}
}

func (l *Ledger) nextHeight() model.Height {
	if l.optsHeightFunc != nil {
		return l.optsHeightFunc()
	}

	return l.readHeightWithoutLocking() + 1
}

func (l *Ledger) advanceHeight(mutations kvstore.BatchedMutations) error {
	return storeHeight(l.nextHeight(), mutations)
}
