package model

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"
)

// IdentityLength defines the byte length of an Identity.
const IdentityLength = 32

// Identity is an opaque caller/owner/user handle supplied by the host
// environment. The ledger only ever compares identities for equality and
// against NullIdentity; it never verifies their cryptographic authenticity.
type Identity [IdentityLength]byte

// NullIdentity is the reserved sentinel that may never be assigned as an
// owner, admin or role target.
var NullIdentity = Identity{}

// IdentityFromData derives a deterministic Identity from arbitrary data.
func IdentityFromData(data []byte) Identity {
	return blake2b.Sum256(data)
}

func IdentityFromBytes(bytes []byte) (Identity, int, error) {
	var identity Identity
	if len(bytes) < IdentityLength {
		return identity, 0, ierrors.New("invalid identity length")
	}
	copy(identity[:], bytes)

	return identity, IdentityLength, nil
}

// IdentityFromHexString parses an Identity from its hex representation.
func IdentityFromHexString(hexString string) (Identity, error) {
	decoded, err := hex.DecodeString(stripHexPrefix(hexString))
	if err != nil {
		return NullIdentity, ierrors.Wrap(err, "failed to decode identity hex")
	}

	identity, _, err := IdentityFromBytes(decoded)

	return identity, err
}

// IsNull returns true if the identity is the reserved null sentinel.
func (i Identity) IsNull() bool {
	return i == NullIdentity
}

func (i Identity) Bytes() ([]byte, error) {
	return i[:], nil
}

func (i Identity) ToHex() string {
	return "0x" + hex.EncodeToString(i[:])
}

func (i Identity) String() string {
	return "Identity(" + i.ToHex() + ")"
}
