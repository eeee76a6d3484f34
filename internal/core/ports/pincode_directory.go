package ports

import (
	"rates/internal/core/domain/services"
)

// PincodeDirectory is the read-only lookup supplying city, state and metro
// data per pincode. The canonical interface is defined next to its consumer
// in the services package; the alias documents it as a driven port so
// adapters have a single place to discover every outbound contract.
type PincodeDirectory = services.PincodeDirectory
