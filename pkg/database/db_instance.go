package database

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
)

type DBInstance struct {
	store         kvstore.KVStore
	healthTracker *kvstore.StoreHealthTracker
	dbConfig      Config
}

func NewDBInstance(dbConfig Config) *DBInstance {
	db, err := StoreWithDefaultSettings(dbConfig.Directory, dbConfig.Engine)
	if err != nil {
		panic(err)
	}

	storeHealthTracker, err := kvstore.NewStoreHealthTracker(db, dbConfig.PrefixHealth, dbConfig.Version, nil)
	if err != nil {
		panic(ierrors.Wrapf(err, "database in %s is corrupted, delete the database directory", dbConfig.Directory))
	}
	if err = storeHealthTracker.MarkCorrupted(); err != nil {
		panic(err)
	}

	return &DBInstance{
		store:         db,
		healthTracker: storeHealthTracker,
		dbConfig:      dbConfig,
	}
}

func (d *DBInstance) Close() {
	if err := d.healthTracker.MarkHealthy(); err != nil {
		panic(err)
	}

	if err := d.store.Flush(); err != nil {
		panic(err)
	}
	if err := d.store.Close(); err != nil {
		panic(err)
	}
}

func (d *DBInstance) KVStore() kvstore.KVStore {
	return d.store
}
