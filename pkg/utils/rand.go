package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/aeroledger/aeroledger/pkg/model"
)

func RandomIntn(n int) int {
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(result.Int64())
}

// RandBytes returns length amount random bytes.
func RandBytes(length int) []byte {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return b
}

func RandAircraftID() model.AircraftID {
	id, _, err := model.AircraftIDFromBytes(RandBytes(model.AircraftIDLength))
	if err != nil {
		panic(err)
	}

	return id
}

func RandIdentity() model.Identity {
	identity, _, err := model.IdentityFromBytes(RandBytes(model.IdentityLength))
	if err != nil {
		panic(err)
	}

	return identity
}

func RandHeight() model.Height {
	return model.Height(RandomIntn(1 << 30))
}
