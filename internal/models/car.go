package models

// Car is the reference record a rental is priced against.
type Car struct {
	// ID identifies the car; rentals refer to it through CarID.
	ID int64

	// PricePerDay is the undiscounted daily rate in minor units.
	PricePerDay int64

	// PricePerKm is the rate charged per kilometer driven, in minor units.
	PricePerKm int64
}
