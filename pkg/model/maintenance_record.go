package model

import (
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"
	"github.com/iotaledger/hive.go/stringify"
)

// MaxDetailsLength is the maximum byte length of a maintenance record payload.
const MaxDetailsLength = 1024

// MaintenanceRecord is a single immutable entry of an aircraft's maintenance
// log. Once appended it is never modified or deleted.
type MaintenanceRecord struct {
	// Height is the host sequence counter at the time of the append.
	Height Height
	// Performer is the identity that appended the record.
	Performer Identity
	// Details is the opaque payload, length in [1, MaxDetailsLength].
	Details []byte
}

func MaintenanceRecordFromBytes(bytes []byte) (*MaintenanceRecord, int, error) {
	byteReader := stream.NewByteReader(bytes)

	r, err := MaintenanceRecordFromReader(byteReader)
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "failed to parse MaintenanceRecord")
	}

	return r, byteReader.BytesRead(), nil
}

func MaintenanceRecordFromReader(reader io.ReadSeeker) (*MaintenanceRecord, error) {
	var err error
	r := new(MaintenanceRecord)

	if r.Height, err = stream.Read[Height](reader); err != nil {
		return nil, ierrors.Wrap(err, "failed to read Height")
	}
	if r.Performer, err = stream.Read[Identity](reader); err != nil {
		return nil, ierrors.Wrap(err, "failed to read Performer")
	}
	if r.Details, err = stream.ReadBytesWithSize(reader, serializer.SeriLengthPrefixTypeAsUint16); err != nil {
		return nil, ierrors.Wrap(err, "failed to read Details")
	}

	return r, nil
}

func (r *MaintenanceRecord) Bytes() ([]byte, error) {
	byteBuffer := stream.NewByteBuffer()

	if err := stream.Write(byteBuffer, r.Height); err != nil {
		return nil, ierrors.Wrap(err, "failed to write Height")
	}
	if err := stream.Write(byteBuffer, r.Performer); err != nil {
		return nil, ierrors.Wrap(err, "failed to write Performer")
	}
	if err := stream.WriteBytesWithSize(byteBuffer, r.Details, serializer.SeriLengthPrefixTypeAsUint16); err != nil {
		return nil, ierrors.Wrap(err, "failed to write Details")
	}

	return byteBuffer.Bytes()
}

func (r *MaintenanceRecord) String() string {
	return stringify.Struct("MaintenanceRecord",
		stringify.NewStructField("Height", uint64(r.Height)),
		stringify.NewStructField("Performer", r.Performer),
		stringify.NewStructField("Details", r.Details),
	)
}
