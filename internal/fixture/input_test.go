package fixture

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/rentalfare/internal/models"
)

func TestLoadInput(t *testing.T) {
	in, err := LoadInput(filepath.Join("testdata", "input.json"))
	if err != nil {
		t.Fatalf("LoadInput failed: %v", err)
	}

	if len(in.Cars) != 3 || len(in.Rentals) != 4 || len(in.Options) != 3 {
		t.Fatalf("got %d cars, %d rentals, %d options; want 3, 4, 3",
			len(in.Cars), len(in.Rentals), len(in.Options))
	}

	if want := (models.Car{ID: 2, PricePerDay: 3000, PricePerKm: 15}); in.Cars[1] != want {
		t.Errorf("car = %+v, want %+v", in.Cars[1], want)
	}

	r := in.Rentals[1]
	if r.ID != 2 || r.CarID != 1 || r.Distance != 300 {
		t.Errorf("unexpected rental: %+v", r)
	}
	if !r.StartDate.Equal(time.Date(2015, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", r.StartDate)
	}
	if r.Days() != 2 {
		t.Errorf("Days() = %d, want 2", r.Days())
	}

	if want := (models.Option{ID: 3, RentalID: 3, Type: models.OptionAdditionalInsurance}); in.Options[2] != want {
		t.Errorf("option = %+v, want %+v", in.Options[2], want)
	}
}

func TestLoadInput_MissingFile(t *testing.T) {
	if _, err := LoadInput(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		check   func(t *testing.T, in *models.Input)
	}{
		{
			name: "options key absent",
			doc: `{"cars":[{"id":1,"price_per_day":2000,"price_per_km":10}],
				"rentals":[{"id":1,"car_id":1,"start_date":"2017-12-08","end_date":"2017-12-10","distance":100}]}`,
			check: func(t *testing.T, in *models.Input) {
				if len(in.Options) != 0 {
					t.Errorf("got %d options, want 0", len(in.Options))
				}
				if in.Rentals[0].Days() != 3 {
					t.Errorf("Days() = %d, want 3", in.Rentals[0].Days())
				}
			},
		},
		{
			name: "unknown option type passes through",
			doc:  `{"cars":[],"rentals":[],"options":[{"id":1,"rental_id":1,"type":"jetpack"}]}`,
			check: func(t *testing.T, in *models.Input) {
				if in.Options[0].Type != "jetpack" {
					t.Errorf("Type = %q, want jetpack", in.Options[0].Type)
				}
			},
		},
		{
			name:    "malformed json",
			doc:     `{"cars": [`,
			wantErr: true,
		},
		{
			name:    "bad start date",
			doc:     `{"rentals":[{"id":1,"car_id":1,"start_date":"08/12/2017","end_date":"2017-12-10"}]}`,
			wantErr: true,
		},
		{
			name:    "bad end date",
			doc:     `{"rentals":[{"id":1,"car_id":1,"start_date":"2017-12-08","end_date":"2017-13-01"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := DecodeInput(strings.NewReader(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.check != nil {
				tt.check(t, in)
			}
		})
	}
}
