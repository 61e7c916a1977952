package ledger

import (
	"github.com/iotaledger/hive.go/app"
)

// ParametersLedger contains the definition of the parameters used by the ledger.
type ParametersLedger struct {
	// GenesisAdmin is the hex identity an empty ledger is bootstrapped with.
	GenesisAdmin string `default:"" usage:"the hex encoded identity an empty ledger is bootstrapped with on first start"`
}

// ParametersDatabase contains the definition of configuration parameters used by the storage layer.
type ParametersDatabase struct {
	// Directory defines the directory of the database.
	Directory string `default:"db" usage:"path to the database directory"`

	// InMemory defines whether to use an in-memory database.
	InMemory bool `default:"false" usage:"whether the database is only kept in memory and not persisted"`
}

var ParamsLedger = &ParametersLedger{}

var ParamsDatabase = &ParametersDatabase{}

var params = &app.ComponentParams{
	Params: map[string]any{
		"ledger":   ParamsLedger,
		"database": ParamsDatabase,
	},
}
