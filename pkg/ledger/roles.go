package ledger

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/aeroledger/aeroledger/pkg/model"
)

// roleKey builds the composite (aircraft, identity) key of a role assignment.
// The pair is encoded as raw fixed-size bytes, so two distinct pairs can
// never collide.
func roleKey(aircraftID model.AircraftID, user model.Identity) []byte {
	byteBuffer := stream.NewByteBuffer(serializer.OneByte + model.AircraftIDLength + model.IdentityLength)

	// There can't be any errors.
	_ = stream.Write(byteBuffer, StoreKeyPrefixRoles)
	_ = stream.Write(byteBuffer, aircraftID)
	_ = stream.Write(byteBuffer, user)

	return lo.PanicOnErr(byteBuffer.Bytes())
}

func (l *Ledger) readRoleWithoutLocking(aircraftID model.AircraftID, user model.Identity) (model.Role, error) {
	value, err := l.store.Get(roleKey(aircraftID, user))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return model.RoleNone, nil
		}

		return model.RoleNone, ierrors.Wrapf(err, "failed to load role of %s for aircraft %s", user, aircraftID)
	}

	role, _, err := model.RoleFromBytes(value)
	if err != nil {
		return model.RoleNone, ierrors.Wrapf(err, "failed to parse role of %s for aircraft %s", user, aircraftID)
	}

	return role, nil
}

// hasRoleWithoutLocking is the single authorization predicate of the ledger:
// holding the owner role satisfies every role requirement.
func (l *Ledger) hasRoleWithoutLocking(aircraftID model.AircraftID, user model.Identity, requiredRole model.Role) (bool, error) {
	role, err := l.readRoleWithoutLocking(aircraftID, user)
	if err != nil {
		return false, err
	}

	return role == requiredRole || role == model.RoleOwner, nil
}

func storeRole(aircraftID model.AircraftID, user model.Identity, role model.Role, mutations kvstore.BatchedMutations) error {
	return mutations.Set(roleKey(aircraftID, user), lo.PanicOnErr(role.Bytes()))
}

func deleteRole(aircraftID model.AircraftID, user model.Identity, mutations kvstore.BatchedMutations) error {
	return mutations.Delete(roleKey(aircraftID, user))
}
