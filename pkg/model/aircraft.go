package model

import (
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/stream"
	"github.com/iotaledger/hive.go/stringify"
)

// Aircraft is the registry state of a registered asset. An aircraft is
// created by registration and never deleted; only its owner mutates.
type Aircraft struct {
	// Owner is the identity currently holding RoleOwner for the aircraft.
	Owner Identity
	// LogCount is the next free maintenance log index (gapless, monotonic).
	LogCount uint64
}

func AircraftFromBytes(bytes []byte) (*Aircraft, int, error) {
	byteReader := stream.NewByteReader(bytes)

	a, err := AircraftFromReader(byteReader)
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "failed to parse Aircraft")
	}

	return a, byteReader.BytesRead(), nil
}

func AircraftFromReader(reader io.ReadSeeker) (*Aircraft, error) {
	var err error
	a := new(Aircraft)

	if a.Owner, err = stream.Read[Identity](reader); err != nil {
		return nil, ierrors.Wrap(err, "failed to read Owner")
	}
	if a.LogCount, err = stream.Read[uint64](reader); err != nil {
		return nil, ierrors.Wrap(err, "failed to read LogCount")
	}

	return a, nil
}

func (a *Aircraft) Bytes() ([]byte, error) {
	byteBuffer := stream.NewByteBuffer()

	if err := stream.Write(byteBuffer, a.Owner); err != nil {
		return nil, ierrors.Wrap(err, "failed to write Owner")
	}
	if err := stream.Write(byteBuffer, a.LogCount); err != nil {
		return nil, ierrors.Wrap(err, "failed to write LogCount")
	}

	return byteBuffer.Bytes()
}

func (a *Aircraft) String() string {
	return stringify.Struct("Aircraft",
		stringify.NewStructField("Owner", a.Owner),
		stringify.NewStructField("LogCount", a.LogCount),
	)
}
