package calculator

import (
	"errors"
	"fmt"

	"github.com/mmynk/rentalfare/internal/models"
)

// ErrUnknownOptionType is returned when an option type has no daily rate.
var ErrUnknownOptionType = errors.New("unknown option type")

// optionDailyRates are flat per-day prices in minor units.
var optionDailyRates = map[models.OptionType]int64{
	models.OptionGPS:                 500,
	models.OptionBabySeat:            200,
	models.OptionAdditionalInsurance: 1000,
}

// OptionPrice is the price of one option type over a whole rental.
type OptionPrice struct {
	Type  models.OptionType
	Price int64
}

// OptionPrices is an ordered mapping from option type to price.
// Order is the order in which each type was first seen.
type OptionPrices []OptionPrice

// Get returns the price of t, or 0 when the rental does not have it.
func (p OptionPrices) Get(t models.OptionType) int64 {
	for _, op := range p {
		if op.Type == t {
			return op.Price
		}
	}
	return 0
}

func (p OptionPrices) has(t models.OptionType) bool {
	for _, op := range p {
		if op.Type == t {
			return true
		}
	}
	return false
}

// Types returns the option types in order. It never returns nil.
func (p OptionPrices) Types() []models.OptionType {
	types := make([]models.OptionType, 0, len(p))
	for _, op := range p {
		types = append(types, op.Type)
	}
	return types
}

// Total returns the sum of all option prices.
func (p OptionPrices) Total() int64 {
	var total int64
	for _, op := range p {
		total += op.Price
	}
	return total
}

// PriceForOption returns the price of one option type over the given number of days.
func PriceForOption(t models.OptionType, days int) (int64, error) {
	rate, ok := optionDailyRates[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOptionType, t)
	}
	return rate * int64(days), nil
}

// PriceOptions prices the options selected for a single rental.
// A type listed twice keeps its first position and is priced once.
func PriceOptions(options []models.Option, days int) (OptionPrices, error) {
	prices := make(OptionPrices, 0, len(options))
	for _, o := range options {
		if prices.has(o.Type) {
			continue
		}
		price, err := PriceForOption(o.Type, days)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", o.ID, err)
		}
		prices = append(prices, OptionPrice{Type: o.Type, Price: price})
	}
	return prices, nil
}
