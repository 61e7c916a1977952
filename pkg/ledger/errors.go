package ledger

import "github.com/iotaledger/hive.go/ierrors"

// The closed error taxonomy of the ledger. Every fallible operation returns
// exactly one of these sentinels (possibly wrapped with context); callers
// test with ierrors.Is.
var (
	// ErrNotAuthorized is returned if the caller lacks the role or admin
	// privilege the operation requires.
	ErrNotAuthorized = ierrors.New("caller is not authorized")

	// ErrInvalidRole is returned if a role grant names a role outside
	// {mechanic, inspector}.
	ErrInvalidRole = ierrors.New("role cannot be granted")

	// ErrPaused is returned by every mutating operation while the ledger is
	// halted, except the admin pause/admin-transfer controls.
	ErrPaused = ierrors.New("ledger is paused")

	// ErrNotRegistered is returned if the aircraft is unknown to the registry.
	ErrNotRegistered = ierrors.New("aircraft is not registered")

	// ErrAlreadyRegistered is returned on a duplicate registration.
	ErrAlreadyRegistered = ierrors.New("aircraft is already registered")

	// ErrInvalidDetails is returned if a maintenance payload is empty or
	// exceeds model.MaxDetailsLength.
	ErrInvalidDetails = ierrors.New("invalid maintenance details length")

	// ErrNullIdentity is returned if the reserved null identity is used as an
	// owner, admin or role target.
	ErrNullIdentity = ierrors.New("the null identity is reserved")

	// ErrLogNotFound is returned if no maintenance log entry exists at the
	// requested (aircraft, index) key.
	ErrLogNotFound = ierrors.New("maintenance log entry not found")
)
