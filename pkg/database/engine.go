package database

import (
	hivedb "github.com/iotaledger/hive.go/db"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/iotaledger/hive.go/kvstore/rocksdb"
)

// StoreWithDefaultSettings returns a KVStore with default settings for the
// given engine. EngineAuto resolves to RocksDB.
func StoreWithDefaultSettings(path string, dbEngine hivedb.Engine) (kvstore.KVStore, error) {
	switch dbEngine {
	case hivedb.EngineAuto, hivedb.EngineRocksDB:
		db, err := rocksdb.CreateDB(path)
		if err != nil {
			return nil, err
		}

		return rocksdb.New(db), nil

	case hivedb.EngineMapDB:
		return mapdb.NewMapDB(), nil

	default:
		return nil, ierrors.Errorf("unknown database engine: %s, supported engines: rocksdb/mapdb", dbEngine)
	}
}
