package delivery

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"atlas/internal/pkg/errs"
)

const (
	// minEstimate and maxEstimate bound the estimated delivery duration
	// assigned when a run starts.
	minEstimate = 15 * time.Minute
	maxEstimate = 45 * time.Minute
)

var (
	// ErrCarrierIsRequired is returned when an assignment has no carrier.
	ErrCarrierIsRequired = errs.NewValueIsRequiredError("carrier")
	// ErrVehicleIsRequired is returned when an assignment has no vehicle.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrAddressIsRequired is returned when an assignment has no address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// carriers, vehicles and streets feed the cosmetic random assignment. They
// carry no meaning beyond display.
var carriers = []string{
	"Atlas Express",
	"Rapid Route Logistics",
	"Summit Freight",
	"BlueLine Couriers",
}

var vehicles = []string{
	"Box Truck 12",
	"Cargo Van 7",
	"Delivery Truck 3",
	"Sprinter Van 21",
}

var streets = []string{
	"Oak Street",
	"Maple Avenue",
	"Cedar Lane",
	"Elm Boulevard",
	"Pine Road",
}

// Assignment is the carrier, vehicle, destination and estimated duration
// fixed when a delivery run starts. It never changes afterwards.
type Assignment struct {
	// Carrier is the delivery company name
	Carrier string

	// Vehicle is the assigned vehicle label
	Vehicle string

	// Address is the destination street address
	Address string

	// Estimate is the estimated delivery duration assigned at start
	Estimate time.Duration
}

// Validate checks that every assignment field is present and the estimate is
// positive.
func (a Assignment) Validate() error {
	var err error
	if a.Carrier == "" {
		err = errors.Join(err, ErrCarrierIsRequired)
	}
	if a.Vehicle == "" {
		err = errors.Join(err, ErrVehicleIsRequired)
	}
	if a.Address == "" {
		err = errors.Join(err, ErrAddressIsRequired)
	}
	if a.Estimate <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("estimate"))
	}
	return err
}

// NewRandomAssignment draws a carrier, vehicle, street address and an
// estimate between 15 and 45 minutes. Display only.
func NewRandomAssignment() Assignment {
	spread := int((maxEstimate-minEstimate)/time.Minute) + 1
	number := rand.IntN(9900) + 100 //nolint:gosec // it's ok
	return Assignment{
		Carrier:  carriers[rand.IntN(len(carriers))],                          //nolint:gosec // it's ok
		Vehicle:  vehicles[rand.IntN(len(vehicles))],                          //nolint:gosec // it's ok
		Address:  fmt.Sprintf("%d %s", number, streets[rand.IntN(len(streets))]), //nolint:gosec // it's ok
		Estimate: minEstimate + time.Duration(rand.IntN(spread))*time.Minute,  //nolint:gosec // it's ok
	}
}
