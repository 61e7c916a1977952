package ledger

import (
	"context"

	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/app"
	hivedb "github.com/iotaledger/hive.go/db"
	"github.com/iotaledger/hive.go/runtime/options"

	"github.com/aeroledger/aeroledger/pkg/daemon"
	"github.com/aeroledger/aeroledger/pkg/database"
	ledgerpkg "github.com/aeroledger/aeroledger/pkg/ledger"
	"github.com/aeroledger/aeroledger/pkg/model"
)

const (
	// dbVersion bumps whenever the storage layout changes incompatibly.
	dbVersion byte = 1
)

// prefixHealth is the store prefix of the health tracker, outside of the
// ledger's own prefix space.
var prefixHealth = []byte{255}

func init() {
	Component = &app.Component{
		Name:      "Ledger",
		DepsFunc:  func(cDeps dependencies) { deps = cDeps },
		Params:    params,
		Provide:   provide,
		Configure: configure,
		Run:       run,
	}
}

var (
	Component *app.Component
	deps      dependencies
)

type dependencies struct {
	dig.In

	DBInstance *database.DBInstance
	Ledger     *ledgerpkg.Ledger
}

func provide(c *dig.Container) error {
	if err := c.Provide(func() *database.DBInstance {
		dbEngine := hivedb.EngineRocksDB
		if ParamsDatabase.InMemory {
			dbEngine = hivedb.EngineMapDB
		}

		return database.NewDBInstance(database.Config{
			Engine:       dbEngine,
			Directory:    ParamsDatabase.Directory,
			Version:      dbVersion,
			PrefixHealth: prefixHealth,
		})
	}); err != nil {
		Component.LogPanic(err.Error())
	}

	return c.Provide(func(dbInstance *database.DBInstance) *ledgerpkg.Ledger {
		var opts []options.Option[ledgerpkg.Ledger]
		if ParamsLedger.GenesisAdmin != "" {
			genesisAdmin, err := model.IdentityFromHexString(ParamsLedger.GenesisAdmin)
			if err != nil {
				Component.LogPanicf("invalid genesis admin identity: %s", err)
			}
			opts = append(opts, ledgerpkg.WithGenesisAdmin(genesisAdmin))
		}

		return ledgerpkg.New(dbInstance.KVStore(), opts...)
	})
}

func configure() error {
	deps.Ledger.Events().AircraftRegistered.Hook(func(event *ledgerpkg.AircraftRegisteredEvent) {
		Component.LogInfof("AircraftRegistered: %s owner %s", event.AircraftID, event.Owner)
	})

	deps.Ledger.Events().OwnershipTransferred.Hook(func(event *ledgerpkg.OwnershipTransferredEvent) {
		Component.LogInfof("OwnershipTransferred: %s %s -> %s", event.AircraftID, event.PreviousOwner, event.NewOwner)
	})

	deps.Ledger.Events().RoleAdded.Hook(func(event *ledgerpkg.RoleAddedEvent) {
		Component.LogInfof("RoleAdded: %s %s as %s", event.AircraftID, event.User, event.Role)
	})

	deps.Ledger.Events().RoleRemoved.Hook(func(event *ledgerpkg.RoleRemovedEvent) {
		Component.LogInfof("RoleRemoved: %s %s", event.AircraftID, event.User)
	})

	deps.Ledger.Events().MaintenanceLogged.Hook(func(event *ledgerpkg.MaintenanceLoggedEvent) {
		Component.LogInfof("MaintenanceLogged: %s index %d height %d by %s", event.AircraftID, event.Index, event.Height, event.Performer)
	})

	deps.Ledger.Events().PauseFlagUpdated.Hook(func(event *ledgerpkg.PauseFlagUpdatedEvent) {
		Component.LogInfof("PauseFlagUpdated: paused=%t", event.Paused)
	})

	deps.Ledger.Events().AdminTransferred.Hook(func(event *ledgerpkg.AdminTransferredEvent) {
		Component.LogInfof("AdminTransferred: %s -> %s", event.PreviousAdmin, event.NewAdmin)
	})

	return nil
}

func run() error {
	if err := Component.Daemon().BackgroundWorker(Component.Name, func(ctx context.Context) {
		<-ctx.Done()
		Component.LogInfo("Gracefully shutting down the Ledger...")
		deps.Ledger.Shutdown()
	}, daemon.PriorityLedger); err != nil {
		Component.LogPanicf("failed to start worker: %s", err)
	}

	if err := Component.Daemon().BackgroundWorker("Database", func(ctx context.Context) {
		<-ctx.Done()
		Component.LogInfo("Closing database ...")
		deps.DBInstance.Close()
		Component.LogInfo("Closing database ... done")
	}, daemon.PriorityCloseDatabase); err != nil {
		Component.LogPanicf("failed to start worker: %s", err)
	}

	return nil
}
