package calculator

import (
	"errors"
	"testing"

	"github.com/mmynk/rentalfare/internal/models"
)

func amountOf(t *testing.T, entries []models.LedgerEntry, who models.Party) int64 {
	t.Helper()
	for _, e := range entries {
		if e.Who == who {
			return e.Amount
		}
	}
	t.Fatalf("no ledger entry for %s", who)
	return 0
}

func TestBuildLedger_NoOptions(t *testing.T) {
	commission := CommissionSplit{Insurance: 450, Assistance: 100, PlatformNet: 350}
	entries := BuildLedger(3000, commission, nil)

	want := []models.LedgerEntry{
		{Who: models.PartyDriver, Type: models.Debit, Amount: 3000},
		{Who: models.PartyOwner, Type: models.Credit, Amount: 2100},
		{Who: models.PartyInsurance, Type: models.Credit, Amount: 450},
		{Who: models.PartyAssistance, Type: models.Credit, Amount: 100},
		{Who: models.PartyPlatform, Type: models.Credit, Amount: 350},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
	if err := VerifyLedger(entries); err != nil {
		t.Errorf("VerifyLedger failed: %v", err)
	}
}

func TestBuildLedger_OptionCredits(t *testing.T) {
	// 2 days @2000/day + 100km @10/km: base 4800, commission 1440
	const base = 4800
	commission := SplitCommission(base, 2)
	plain := BuildLedger(base, commission, nil)

	tests := []struct {
		name          string
		options       OptionPrices
		ownerDelta    int64
		platformDelta int64
	}{
		{
			name:       "gps goes to owner",
			options:    OptionPrices{{Type: models.OptionGPS, Price: 1000}},
			ownerDelta: 1000,
		},
		{
			name:       "baby seat goes to owner",
			options:    OptionPrices{{Type: models.OptionBabySeat, Price: 400}},
			ownerDelta: 400,
		},
		{
			name:          "additional insurance goes to platform",
			options:       OptionPrices{{Type: models.OptionAdditionalInsurance, Price: 2000}},
			platformDelta: 2000,
		},
		{
			name: "all options",
			options: OptionPrices{
				{Type: models.OptionGPS, Price: 1000},
				{Type: models.OptionBabySeat, Price: 400},
				{Type: models.OptionAdditionalInsurance, Price: 2000},
			},
			ownerDelta:    1400,
			platformDelta: 2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := BuildLedger(base+tt.options.Total(), commission, tt.options)

			if err := VerifyLedger(entries); err != nil {
				t.Fatalf("VerifyLedger failed: %v", err)
			}
			if got := amountOf(t, entries, models.PartyDriver); got != base+tt.options.Total() {
				t.Errorf("driver debit = %d, want %d", got, base+tt.options.Total())
			}
			if got, want := amountOf(t, entries, models.PartyOwner), amountOf(t, plain, models.PartyOwner)+tt.ownerDelta; got != want {
				t.Errorf("owner credit = %d, want %d", got, want)
			}
			if got, want := amountOf(t, entries, models.PartyPlatform), amountOf(t, plain, models.PartyPlatform)+tt.platformDelta; got != want {
				t.Errorf("platform credit = %d, want %d", got, want)
			}
			if got := amountOf(t, entries, models.PartyInsurance); got != commission.Insurance {
				t.Errorf("insurance credit = %d, want %d", got, commission.Insurance)
			}
			if got := amountOf(t, entries, models.PartyAssistance); got != commission.Assistance {
				t.Errorf("assistance credit = %d, want %d", got, commission.Assistance)
			}
		})
	}
}

func TestBuildLedger_NegativePlatformNetStillBalances(t *testing.T) {
	commission := SplitCommission(1000, 10)
	options := OptionPrices{{Type: models.OptionAdditionalInsurance, Price: 10000}}
	entries := BuildLedger(1000+options.Total(), commission, options)

	if err := VerifyLedger(entries); err != nil {
		t.Fatalf("VerifyLedger failed: %v", err)
	}
	if got := amountOf(t, entries, models.PartyPlatform); got != 10000-850 {
		t.Errorf("platform credit = %d, want %d", got, 10000-850)
	}
}

func TestVerifyLedger(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.LedgerEntry
		wantErr bool
	}{
		{name: "empty ledger", entries: nil},
		{
			name: "balanced",
			entries: []models.LedgerEntry{
				{Who: models.PartyDriver, Type: models.Debit, Amount: 100},
				{Who: models.PartyOwner, Type: models.Credit, Amount: 130},
				{Who: models.PartyPlatform, Type: models.Credit, Amount: -30},
			},
		},
		{
			name: "unbalanced",
			entries: []models.LedgerEntry{
				{Who: models.PartyDriver, Type: models.Debit, Amount: 100},
				{Who: models.PartyOwner, Type: models.Credit, Amount: 99},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyLedger(tt.entries)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyLedger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnbalancedLedger) {
				t.Errorf("expected ErrUnbalancedLedger, got %v", err)
			}
		})
	}
}
