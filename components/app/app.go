package app

import (
	"github.com/iotaledger/hive.go/app"
	"github.com/iotaledger/hive.go/app/components/profiling"
	"github.com/iotaledger/hive.go/app/components/shutdown"

	"github.com/aeroledger/aeroledger/components/ledger"
	"github.com/aeroledger/aeroledger/components/restapi"
	coreapi "github.com/aeroledger/aeroledger/components/restapi/core"
)

var (
	// Name of the app.
	Name = "aeroledger"

	// Version of the app.
	Version = "0.1.0"
)

func App() *app.App {
	return app.New(Name, Version,
		app.WithInitComponent(InitComponent),
		app.WithComponents(
			shutdown.Component,
			profiling.Component,
			ledger.Component,
			restapi.Component,
			coreapi.Component,
		),
	)
}

var InitComponent *app.InitComponent

func init() {
	InitComponent = &app.InitComponent{
		Component: &app.Component{
			Name: "App",
		},
		NonHiddenFlags: []string{
			"config",
			"help",
			"version",
		},
	}
}
