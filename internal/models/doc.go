// Package models defines the domain records of the rental fare engine.
//
// # Reference data
//
// Cars, rentals and options are loaded once per run and never mutated:
//   - Car: a vehicle with its per-day and per-kilometer rates
//   - Rental: a booking of one car over an inclusive range of calendar dates
//   - Option: a paid add-on (GPS, baby seat, additional insurance) on a rental
//
// Input bundles the three collections so the engine never reads hidden
// process-wide state.
//
// # Derived records
//
// LedgerEntry and RentalResult are produced fresh for every rental by the
// service and handed to the output sink.
//
// # Amounts
//
// Every amount is an int64 in minor currency units (cents). There is no
// currency field; a run is single-currency.
package models
