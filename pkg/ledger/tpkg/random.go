package tpkg

import (
	"github.com/aeroledger/aeroledger/pkg/model"
	"github.com/aeroledger/aeroledger/pkg/utils"
)

func RandAircraftID() model.AircraftID {
	return utils.RandAircraftID()
}

func RandIdentity() model.Identity {
	return utils.RandIdentity()
}

// RandDetails returns a random maintenance payload of the given length.
func RandDetails(length int) []byte {
	return utils.RandBytes(length)
}

func RandMaintenanceRecord() *model.MaintenanceRecord {
	return &model.MaintenanceRecord{
		Height:    utils.RandHeight(),
		Performer: RandIdentity(),
		Details:   RandDetails(1 + utils.RandomIntn(model.MaxDetailsLength)),
	}
}
