package model

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"
)

// AircraftIDLength defines the byte length of an AircraftID.
const AircraftIDLength = 32

// AircraftID is the fixed-size opaque identifier of a registered aircraft asset.
type AircraftID [AircraftIDLength]byte

// EmptyAircraftID is the zero value of an AircraftID.
var EmptyAircraftID = AircraftID{}

// AircraftIDFromData derives a deterministic AircraftID from arbitrary data
// (e.g. a registration/tail number).
func AircraftIDFromData(data []byte) AircraftID {
	return blake2b.Sum256(data)
}

func AircraftIDFromBytes(bytes []byte) (AircraftID, int, error) {
	var id AircraftID
	if len(bytes) < AircraftIDLength {
		return id, 0, ierrors.New("invalid aircraft ID length")
	}
	copy(id[:], bytes)

	return id, AircraftIDLength, nil
}

// AircraftIDFromHexString parses an AircraftID from its hex representation.
func AircraftIDFromHexString(hexString string) (AircraftID, error) {
	decoded, err := hex.DecodeString(stripHexPrefix(hexString))
	if err != nil {
		return EmptyAircraftID, ierrors.Wrap(err, "failed to decode aircraft ID hex")
	}

	id, _, err := AircraftIDFromBytes(decoded)

	return id, err
}

func (id AircraftID) Bytes() ([]byte, error) {
	return id[:], nil
}

func (id AircraftID) ToHex() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id AircraftID) String() string {
	return "AircraftID(" + id.ToHex() + ")"
}

func stripHexPrefix(hexString string) string {
	if len(hexString) >= 2 && hexString[0:2] == "0x" {
		return hexString[2:]
	}

	return hexString
}
