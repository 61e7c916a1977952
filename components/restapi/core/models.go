package core

// InfoResponse is the global ledger state.
type InfoResponse struct {
	Admin        string `json:"admin"`
	Paused       bool   `json:"paused"`
	LatestHeight uint64 `json:"latestHeight"`
}

// AircraftResponse is the registry state of a single aircraft.
type AircraftResponse struct {
	AircraftID string `json:"aircraftId"`
	Owner      string `json:"owner"`
	LogCount   uint64 `json:"logCount"`
}

// RoleResponse is the role assignment of an identity for an aircraft.
type RoleResponse struct {
	AircraftID string `json:"aircraftId"`
	Identity   string `json:"identity"`
	Role       string `json:"role"`
}

// LogCountResponse is the number of maintenance records of an aircraft.
type LogCountResponse struct {
	AircraftID string `json:"aircraftId"`
	LogCount   uint64 `json:"logCount"`
}

// MaintenanceLogResponse is a single maintenance record. Details is base64
// encoded, like every JSON byte payload.
type MaintenanceLogResponse struct {
	AircraftID string `json:"aircraftId"`
	Index      uint64 `json:"index"`
	Height     uint64 `json:"height"`
	Performer  string `json:"performer"`
	Details    []byte `json:"details"`
}

// RegisterAircraftRequest registers a new aircraft with its initial owner.
type RegisterAircraftRequest struct {
	AircraftID string `json:"aircraftId"`
	Owner      string `json:"owner"`
}

// TransferOwnershipRequest moves an aircraft to a new owner.
type TransferOwnershipRequest struct {
	NewOwner string `json:"newOwner"`
}

// AddRoleRequest grants a mechanic or inspector role.
type AddRoleRequest struct {
	Role string `json:"role"`
}

// LogMaintenanceRequest appends a maintenance record.
type LogMaintenanceRequest struct {
	Details []byte `json:"details"`
}

// LogMaintenanceResponse is the position of a freshly appended record.
type LogMaintenanceResponse struct {
	AircraftID string `json:"aircraftId"`
	Index      uint64 `json:"index"`
}

// SetPausedRequest toggles the global pause flag.
type SetPausedRequest struct {
	Paused bool `json:"paused"`
}

// TransferAdminRequest replaces the admin identity.
type TransferAdminRequest struct {
	NewAdmin string `json:"newAdmin"`
}
