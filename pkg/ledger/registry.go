package ledger

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/aeroledger/aeroledger/pkg/model"
)

func aircraftKey(aircraftID model.AircraftID) []byte {
	byteBuffer := stream.NewByteBuffer(serializer.OneByte + model.AircraftIDLength)

	// There can't be any errors.
	_ = stream.Write(byteBuffer, StoreKeyPrefixAircraft)
	_ = stream.Write(byteBuffer, aircraftID)

	return lo.PanicOnErr(byteBuffer.Bytes())
}

func (l *Ledger) readAircraftWithoutLocking(aircraftID model.AircraftID) (*model.Aircraft, bool, error) {
	value, err := l.store.Get(aircraftKey(aircraftID))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, false, nil
		}

		return nil, false, ierrors.Wrapf(err, "failed to load aircraft %s", aircraftID)
	}

	aircraft, _, err := model.AircraftFromBytes(value)
	if err != nil {
		return nil, false, ierrors.Wrapf(err, "failed to parse aircraft %s", aircraftID)
	}

	return aircraft, true, nil
}

func storeAircraft(aircraftID model.AircraftID, aircraft *model.Aircraft, mutations kvstore.BatchedMutations) error {
	value, err := aircraft.Bytes()
	if err != nil {
		return ierrors.Wrapf(err, "failed to serialize aircraft %s", aircraftID)
	}

	return mutations.Set(aircraftKey(aircraftID), value)
}
