package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/rentalfare/internal/calculator"
	"github.com/mmynk/rentalfare/internal/models"
)

var (
	// ErrCarNotFound is returned when a rental references a car missing from the input.
	ErrCarNotFound = errors.New("car not found")

	// ErrInvalidDateRange is returned when a rental ends before it starts.
	ErrInvalidDateRange = errors.New("end date precedes start date")
)

// Observer is notified of every rental the service calculates successfully.
type Observer interface {
	ObserveRental(result models.RentalResult)
}

// FareService prices rentals and builds their ledgers.
// It keeps no state between calls and never mutates its input.
type FareService struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures a FareService.
type Option func(*FareService)

// WithLogger sets the logger used for per-rental debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *FareService) {
		s.logger = logger
	}
}

// WithObserver registers an observer, typically metrics.
func WithObserver(o Observer) Option {
	return func(s *FareService) {
		s.observer = o
	}
}

// NewFareService creates a FareService. Without options it logs to slog.Default().
func NewFareService(opts ...Option) *FareService {
	s := &FareService{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateFares calculates every rental of the input, in input order.
// It stops at the first rental that cannot be priced.
func (s *FareService) CalculateFares(in *models.Input) ([]models.RentalResult, error) {
	results := make([]models.RentalResult, 0, len(in.Rentals))
	for _, r := range in.Rentals {
		result, err := s.CalculateRental(in, r)
		if err != nil {
			s.logger.Error("CalculateFares failed", "rental_id", r.ID, "error", err)
			return nil, fmt.Errorf("rental %d: %w", r.ID, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// CalculateRental prices a single rental against the cars and options of in.
//
// Commission is taken on the duration and distance price only; options are
// added afterwards and credited by the ledger.
func (s *FareService) CalculateRental(in *models.Input, r models.Rental) (models.RentalResult, error) {
	car, ok := in.Car(r.CarID)
	if !ok {
		return models.RentalResult{}, fmt.Errorf("%w: %d", ErrCarNotFound, r.CarID)
	}

	days := r.Days()
	if days < 1 {
		return models.RentalResult{}, fmt.Errorf("%w: %s to %s",
			ErrInvalidDateRange, r.StartDate.Format(models.DateLayout), r.EndDate.Format(models.DateLayout))
	}

	durationPrice := calculator.PriceForDuration(days, car.PricePerDay)
	distancePrice := r.Distance * car.PricePerKm
	baseTotal := durationPrice + distancePrice

	options, err := calculator.PriceOptions(in.OptionsFor(r.ID), days)
	if err != nil {
		return models.RentalResult{}, err
	}
	grandTotal := baseTotal + options.Total()

	commission := calculator.SplitCommission(baseTotal, days)
	actions := calculator.BuildLedger(grandTotal, commission, options)
	if err := calculator.VerifyLedger(actions); err != nil {
		return models.RentalResult{}, err
	}

	s.logger.Debug("Rental calculated",
		"rental_id", r.ID,
		"car_id", car.ID,
		"days", days,
		"duration_price", durationPrice,
		"distance_price", distancePrice,
		"options", options.Types(),
		"grand_total", grandTotal,
		"commission", commission.Total(),
		"platform_net", commission.PlatformNet,
	)

	result := models.RentalResult{
		ID:      r.ID,
		Options: options.Types(),
		Actions: actions,
		Breakdown: models.FareBreakdown{
			Days:          days,
			DurationPrice: durationPrice,
			DistancePrice: distancePrice,
			BaseTotal:     baseTotal,
			OptionsTotal:  options.Total(),
			GrandTotal:    grandTotal,
			Commission:    commission.Total(),
			PlatformNet:   commission.PlatformNet,
		},
	}
	if s.observer != nil {
		s.observer.ObserveRental(result)
	}
	return result, nil
}
