package models

// Party is a participant in the money movements of a rental.
type Party string

const (
	PartyDriver     Party = "driver"
	PartyOwner      Party = "owner"
	PartyInsurance  Party = "insurance"
	PartyAssistance Party = "assistance"
	PartyPlatform   Party = "platform"
)

// Direction says whether money leaves (debit) or reaches (credit) a party.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// LedgerEntry is one money movement for one party.
type LedgerEntry struct {
	Who    Party
	Type   Direction
	Amount int64
}

// FareBreakdown holds the intermediate prices of a rental.
type FareBreakdown struct {
	// Days is the inclusive rental duration.
	Days int

	// DurationPrice is the tiered time-based price.
	DurationPrice int64

	// DistancePrice is Distance × Car.PricePerKm.
	DistancePrice int64

	// BaseTotal is DurationPrice + DistancePrice, the amount commission is taken on.
	BaseTotal int64

	// OptionsTotal is the sum of every option price.
	OptionsTotal int64

	// GrandTotal is BaseTotal + OptionsTotal, what the driver pays.
	GrandTotal int64

	// Commission is the gross platform commission before it is split.
	Commission int64

	// PlatformNet is the platform's share of the commission; it can be negative.
	PlatformNet int64
}

// RentalResult is the per-rental outcome handed to the output sink.
type RentalResult struct {
	// ID is the rental identifier.
	ID int64

	// Options lists the applied option types in first-seen order.
	Options []OptionType

	// Actions is the balanced ledger: driver debit, then owner, insurance,
	// assistance and platform credits.
	Actions []LedgerEntry

	// Breakdown is kept for logging and metrics; it is not part of the
	// serialized output.
	Breakdown FareBreakdown
}
