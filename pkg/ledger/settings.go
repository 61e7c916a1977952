package ledger

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"

	"github.com/aeroledger/aeroledger/pkg/model"
)

// The global singleton state of the ledger: the admin identity, the pause
// flag and the latest height counter. All three live under the settings
// prefix and are mutated inside the same batched commit as the state maps
// they guard.

func settingsKey(subKey byte) []byte {
	return []byte{StoreKeyPrefixSettings, subKey}
}

func (l *Ledger) readAdminWithoutLocking() model.Identity {
	value, err := l.store.Get(settingsKey(settingsAdminKey))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return model.NullIdentity
		}
		panic(err)
	}

	return lo.PanicOnErr(lo.DropCount(model.IdentityFromBytes(value)))
}

func storeAdmin(admin model.Identity, mutations kvstore.BatchedMutations) error {
	return mutations.Set(settingsKey(settingsAdminKey), lo.PanicOnErr(admin.Bytes()))
}

func (l *Ledger) readPausedWithoutLocking() bool {
	value, err := l.store.Get(settingsKey(settingsPausedKey))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return false
		}
		panic(err)
	}

	return len(value) == 1 && value[0] == 1
}

func storePaused(paused bool, mutations kvstore.BatchedMutations) error {
	flag := []byte{0}
	if paused {
		flag[0] = 1
	}

	return mutations.Set(settingsKey(settingsPausedKey), flag)
}

func (l *Ledger) readHeightWithoutLocking() model.Height {
	value, err := l.store.Get(settingsKey(settingsHeightKey))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return 0
		}
		panic(err)
	}

	return lo.PanicOnErr(lo.DropCount(model.HeightFromBytes(value)))
}

func storeHeight(height model.Height, mutations kvstore.BatchedMutations) error {
	return mutations.Set(settingsKey(settingsHeightKey), height.MustBytes())
}
