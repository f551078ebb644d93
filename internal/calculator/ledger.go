package calculator

import (
	"errors"
	"fmt"

	"github.com/mmynk/rentalfare/internal/models"
)

// ErrUnbalancedLedger is returned when debits and credits of a ledger differ.
var ErrUnbalancedLedger = errors.New("ledger is not balanced")

// BuildLedger turns the prices of a rental into five money movements, in order:
// driver debit, owner credit, insurance credit, assistance credit and
// platform credit.
//
// GPS and baby seat revenue goes to the owner. Additional insurance revenue
// goes to the platform.
func BuildLedger(grandTotal int64, commission CommissionSplit, options OptionPrices) []models.LedgerEntry {
	ownerOptions := options.Get(models.OptionGPS) + options.Get(models.OptionBabySeat)
	ownerCredit := grandTotal - options.Total() - commission.Total() + ownerOptions
	platformCredit := commission.PlatformNet + options.Get(models.OptionAdditionalInsurance)

	return []models.LedgerEntry{
		{Who: models.PartyDriver, Type: models.Debit, Amount: grandTotal},
		{Who: models.PartyOwner, Type: models.Credit, Amount: ownerCredit},
		{Who: models.PartyInsurance, Type: models.Credit, Amount: commission.Insurance},
		{Who: models.PartyAssistance, Type: models.Credit, Amount: commission.Assistance},
		{Who: models.PartyPlatform, Type: models.Credit, Amount: platformCredit},
	}
}

// VerifyLedger checks that money is conserved: the debits equal the credits.
func VerifyLedger(entries []models.LedgerEntry) error {
	var debits, credits int64
	for _, e := range entries {
		switch e.Type {
		case models.Debit:
			debits += e.Amount
		case models.Credit:
			credits += e.Amount
		}
	}
	if debits != credits {
		return fmt.Errorf("%w: debits %d, credits %d", ErrUnbalancedLedger, debits, credits)
	}
	return nil
}
