package models

// OptionType tags the kind of add-on attached to a rental.
type OptionType string

const (
	OptionGPS                 OptionType = "gps"
	OptionBabySeat            OptionType = "baby_seat"
	OptionAdditionalInsurance OptionType = "additional_insurance"
)

// Valid reports whether t belongs to the closed set of known option types.
func (t OptionType) Valid() bool {
	switch t {
	case OptionGPS, OptionBabySeat, OptionAdditionalInsurance:
		return true
	}
	return false
}

// Option is an add-on selected for a rental.
type Option struct {
	ID       int64
	RentalID int64
	Type     OptionType
}

// Input is the read-only bundle of reference data for one calculation run.
type Input struct {
	Cars    []Car
	Rentals []Rental
	Options []Option
}

// Car returns the first car with the given ID.
func (in *Input) Car(id int64) (Car, bool) {
	for _, c := range in.Cars {
		if c.ID == id {
			return c, true
		}
	}
	return Car{}, false
}

// OptionsFor returns the options attached to a rental, in input order.
func (in *Input) OptionsFor(rentalID int64) []Option {
	var opts []Option
	for _, o := range in.Options {
		if o.RentalID == rentalID {
			opts = append(opts, o)
		}
	}
	return opts
}
