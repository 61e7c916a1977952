package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeroledger/aeroledger/pkg/ledger/tpkg"
	"github.com/aeroledger/aeroledger/pkg/model"
)

func TestAircraftIDHexRoundTrip(t *testing.T) {
	aircraftID := tpkg.RandAircraftID()

	parsed, err := model.AircraftIDFromHexString(aircraftID.ToHex())
	require.NoError(t, err)
	require.Equal(t, aircraftID, parsed)

	// the 0x prefix is optional on input
	parsed, err = model.AircraftIDFromHexString(aircraftID.ToHex()[2:])
	require.NoError(t, err)
	require.Equal(t, aircraftID, parsed)

	_, err = model.AircraftIDFromHexString("0xdeadbeef")
	require.Error(t, err)
}

func TestIdentityNull(t *testing.T) {
	require.True(t, model.NullIdentity.IsNull())
	require.False(t, tpkg.RandIdentity().IsNull())

	parsed, err := model.IdentityFromHexString(model.NullIdentity.ToHex())
	require.NoError(t, err)
	require.True(t, parsed.IsNull())
}

func TestAircraftIDDerivation(t *testing.T) {
	data := tpkg.RandDetails(64)

	require.Equal(t, model.AircraftIDFromData(data), model.AircraftIDFromData(data))
	require.NotEqual(t, model.AircraftIDFromData(data), model.AircraftIDFromData(append(data, 0)))
}

func TestRoleValidity(t *testing.T) {
	for _, role := range []model.Role{model.RoleNone, model.RoleOwner, model.RoleMechanic, model.RoleInspector} {
		roleBytes, err := role.Bytes()
		require.NoError(t, err)

		parsed, _, err := model.RoleFromBytes(roleBytes)
		require.NoError(t, err)
		require.Equal(t, role, parsed)
	}

	_, _, err := model.RoleFromBytes([]byte{byte(model.RoleInspector) + 1})
	require.Error(t, err)

	require.False(t, model.RoleNone.Grantable())
	require.False(t, model.RoleOwner.Grantable())
	require.True(t, model.RoleMechanic.Grantable())
	require.True(t, model.RoleInspector.Grantable())
}

func TestMaintenanceRecordRoundTrip(t *testing.T) {
	record := tpkg.RandMaintenanceRecord()

	recordBytes, err := record.Bytes()
	require.NoError(t, err)

	parsed, consumed, err := model.MaintenanceRecordFromBytes(recordBytes)
	require.NoError(t, err)
	require.Equal(t, len(recordBytes), consumed)
	require.Equal(t, record, parsed)
}

func TestAircraftRoundTrip(t *testing.T) {
	aircraft := &model.Aircraft{
		Owner:    tpkg.RandIdentity(),
		LogCount: 7,
	}

	aircraftBytes, err := aircraft.Bytes()
	require.NoError(t, err)

	parsed, consumed, err := model.AircraftFromBytes(aircraftBytes)
	require.NoError(t, err)
	require.Equal(t, len(aircraftBytes), consumed)
	require.Equal(t, aircraft, parsed)
}
