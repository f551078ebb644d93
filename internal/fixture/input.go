// Package fixture reads rental input documents and writes and compares
// rental output documents, in the JSON layout of the reference fixtures.
package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mmynk/rentalfare/internal/models"
)

type inputDocument struct {
	Cars    []carRecord    `json:"cars"`
	Rentals []rentalRecord `json:"rentals"`
	Options []optionRecord `json:"options"`
}

type carRecord struct {
	ID          int64 `json:"id"`
	PricePerDay int64 `json:"price_per_day"`
	PricePerKm  int64 `json:"price_per_km"`
}

type rentalRecord struct {
	ID        int64  `json:"id"`
	CarID     int64  `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Distance  int64  `json:"distance"`
}

type optionRecord struct {
	ID       int64  `json:"id"`
	RentalID int64  `json:"rental_id"`
	Type     string `json:"type"`
}

// LoadInput reads an input document from a file.
func LoadInput(path string) (*models.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return DecodeInput(f)
}

// DecodeInput parses an input document. The options collection is optional.
// Option types are passed through unchecked; the service rejects unknown ones.
func DecodeInput(r io.Reader) (*models.Input, error) {
	var doc inputDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	in := &models.Input{
		Cars:    make([]models.Car, 0, len(doc.Cars)),
		Rentals: make([]models.Rental, 0, len(doc.Rentals)),
		Options: make([]models.Option, 0, len(doc.Options)),
	}

	for _, c := range doc.Cars {
		in.Cars = append(in.Cars, models.Car{
			ID:          c.ID,
			PricePerDay: c.PricePerDay,
			PricePerKm:  c.PricePerKm,
		})
	}

	for _, r := range doc.Rentals {
		start, err := parseDate(r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("rental %d start_date: %w", r.ID, err)
		}
		end, err := parseDate(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("rental %d end_date: %w", r.ID, err)
		}
		in.Rentals = append(in.Rentals, models.Rental{
			ID:        r.ID,
			CarID:     r.CarID,
			StartDate: start,
			EndDate:   end,
			Distance:  r.Distance,
		})
	}

	for _, o := range doc.Options {
		in.Options = append(in.Options, models.Option{
			ID:       o.ID,
			RentalID: o.RentalID,
			Type:     models.OptionType(o.Type),
		})
	}

	return in, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
