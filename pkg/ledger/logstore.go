package ledger

import (
	"encoding/binary"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/aeroledger/aeroledger/pkg/model"
)

func maintenanceLogPrefix(aircraftID model.AircraftID) []byte {
	byteBuffer := stream.NewByteBuffer(serializer.OneByte + model.AircraftIDLength)

	// There can't be any errors.
	_ = stream.Write(byteBuffer, StoreKeyPrefixMaintenanceLogs)
	_ = stream.Write(byteBuffer, aircraftID)

	return lo.PanicOnErr(byteBuffer.Bytes())
}

// maintenanceLogKey builds the composite (aircraft, index) key of a log
// entry. The index is big endian so prefix iteration yields append order.
func maintenanceLogKey(aircraftID model.AircraftID, index uint64) []byte {
	indexBytes := make([]byte, serializer.UInt64ByteSize)
	binary.BigEndian.PutUint64(indexBytes, index)

	return append(maintenanceLogPrefix(aircraftID), indexBytes...)
}

func (l *Ledger) readMaintenanceRecordWithoutLocking(aircraftID model.AircraftID, index uint64) (*model.MaintenanceRecord, error) {
	value, err := l.store.Get(maintenanceLogKey(aircraftID, index))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			// an unregistered aircraft and an out-of-range index read the same
			return nil, ierrors.Wrapf(ErrLogNotFound, "aircraft %s index %d", aircraftID, index)
		}

		return nil, ierrors.Wrapf(err, "failed to load maintenance log %d of aircraft %s", index, aircraftID)
	}

	record, _, err := model.MaintenanceRecordFromBytes(value)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to parse maintenance log %d of aircraft %s", index, aircraftID)
	}

	return record, nil
}

func storeMaintenanceRecord(aircraftID model.AircraftID, index uint64, record *model.MaintenanceRecord, mutations kvstore.BatchedMutations) error {
	value, err := record.Bytes()
	if err != nil {
		return ierrors.Wrapf(err, "failed to serialize maintenance log %d of aircraft %s", index, aircraftID)
	}

	return mutations.Set(maintenanceLogKey(aircraftID, index), value)
}

// StreamMaintenanceLog calls consumer for every log entry of the given
// aircraft in append order until consumer returns an error or the log is
// exhausted.
func (l *Ledger) StreamMaintenanceLog(aircraftID model.AircraftID, consumer func(index uint64, record *model.MaintenanceRecord) error) error {
	l.ledgerLock.RLock()
	defer l.ledgerLock.RUnlock()

	var innerErr error
	prefix := maintenanceLogPrefix(aircraftID)
	if storageErr := l.store.Iterate(prefix, func(key kvstore.Key, value kvstore.Value) bool {
		index := binary.BigEndian.Uint64(key[len(prefix):])

		record, _, err := model.MaintenanceRecordFromBytes(value)
		if err != nil {
			innerErr = ierrors.Wrapf(err, "failed to parse maintenance log %d of aircraft %s", index, aircraftID)

			return false
		}

		innerErr = consumer(index, record)

		return innerErr == nil
	}); storageErr != nil {
		return ierrors.Wrapf(storageErr, "failed to iterate maintenance log of aircraft %s", aircraftID)
	}

	return innerErr
}
