package ledger

import (
	"github.com/iotaledger/hive.go/runtime/event"

	"github.com/aeroledger/aeroledger/pkg/model"
)

// Events is the set of domain events the ledger exposes. Events are
// triggered after the corresponding state mutation has been committed.
type Events struct {
	AircraftRegistered   *event.Event1[*AircraftRegisteredEvent]
	OwnershipTransferred *event.Event1[*OwnershipTransferredEvent]
	RoleAdded            *event.Event1[*RoleAddedEvent]
	RoleRemoved          *event.Event1[*RoleRemovedEvent]
	MaintenanceLogged    *event.Event1[*MaintenanceLoggedEvent]
	PauseFlagUpdated     *event.Event1[*PauseFlagUpdatedEvent]
	AdminTransferred     *event.Event1[*AdminTransferredEvent]

	event.Group[Events, *Events]
}

var NewEvents = event.CreateGroupConstructor(func() (newEvents *Events) {
	return &Events{
		AircraftRegistered:   event.New1[*AircraftRegisteredEvent](),
		OwnershipTransferred: event.New1[*OwnershipTransferredEvent](),
		RoleAdded:            event.New1[*RoleAddedEvent](),
		RoleRemoved:          event.New1[*RoleRemovedEvent](),
		MaintenanceLogged:    event.New1[*MaintenanceLoggedEvent](),
		PauseFlagUpdated:     event.New1[*PauseFlagUpdatedEvent](),
		AdminTransferred:     event.New1[*AdminTransferredEvent](),
	}
})

type AircraftRegisteredEvent struct {
	AircraftID model.AircraftID
	Owner      model.Identity
}

type OwnershipTransferredEvent struct {
	AircraftID    model.AircraftID
	PreviousOwner model.Identity
	NewOwner      model.Identity
}

type RoleAddedEvent struct {
	AircraftID model.AircraftID
	User       model.Identity
	Role       model.Role
}

type RoleRemovedEvent struct {
	AircraftID model.AircraftID
	User       model.Identity
}

type MaintenanceLoggedEvent struct {
	AircraftID model.AircraftID
	Index      uint64
	Height     model.Height
	Performer  model.Identity
}

type PauseFlagUpdatedEvent struct {
	Paused bool
}

type AdminTransferredEvent struct {
	PreviousAdmin model.Identity
	NewAdmin      model.Identity
}
