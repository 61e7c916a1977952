package ledger

const (
	// StoreKeyPrefixSettings defines the prefix for the global singleton state.
	StoreKeyPrefixSettings byte = 0

	// StoreKeyPrefixAircraft defines the prefix for the aircraft registry.
	StoreKeyPrefixAircraft byte = 1

	// StoreKeyPrefixRoles defines the prefix for per-(aircraft,identity) role assignments.
	StoreKeyPrefixRoles byte = 2

	// StoreKeyPrefixMaintenanceLogs defines the prefix for the per-aircraft maintenance logs.
	StoreKeyPrefixMaintenanceLogs byte = 3
)

// sub-keys of the settings prefix.
const (
	settingsAdminKey = iota
	settingsPausedKey
	settingsHeightKey
)

/*
   Ledger Database

   Settings:
   =========
   Key:
       StoreKeyPrefixSettings + sub-key
              1 byte         +  1 byte

   Value:
       admin:  model.Identity (32 bytes)
       paused: 1 byte flag
       height: model.Height (8 bytes)

   Aircraft:
   =========
   Key:
       StoreKeyPrefixAircraft + model.AircraftID
              1 byte          +     32 bytes

   Value:
       Owner (model.Identity) + LogCount (uint64)
            32 bytes          +   8 bytes

   Role Assignment:
   ================
   Key:
       StoreKeyPrefixRoles + model.AircraftID + model.Identity
             1 byte        +     32 bytes     +    32 bytes

   Value:
       model.Role
         1 byte

   Maintenance Log:
   ================
   Key:
       StoreKeyPrefixMaintenanceLogs + model.AircraftID + log index (uint64, big endian)
                 1 byte              +     32 bytes     +        8 bytes

   Value:
       Height   + Performer  + Details (uint16 length prefix)
       8 bytes  +  32 bytes  + 2 bytes + X bytes

   The log index is encoded big endian so that iterating a single aircraft's
   log prefix yields the entries in append order.
*/
