package main

import (
	"github.com/aeroledger/aeroledger/components/app"
)

func main() {
	app.App().Run()
}
