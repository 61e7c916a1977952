package model

import (
	"encoding/binary"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
)

// HeightLength defines the byte length of a serialized Height.
const HeightLength = 8

// Height is the host-supplied monotonically non-decreasing sequence counter
// recorded at log-append time.
type Height uint64

func HeightFromBytes(bytes []byte) (Height, int, error) {
	if len(bytes) < HeightLength {
		return 0, 0, ierrors.New("invalid height length")
	}

	return Height(binary.LittleEndian.Uint64(bytes)), HeightLength, nil
}

func (h Height) Bytes() ([]byte, error) {
	bytes := make([]byte, HeightLength)
	binary.LittleEndian.PutUint64(bytes, uint64(h))

	return bytes, nil
}

func (h Height) MustBytes() []byte {
	bytes, _ := h.Bytes()

	return bytes
}

func (h Height) String() string {
	return strconv.FormatUint(uint64(h), 10)
}
