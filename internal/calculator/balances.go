package calculator

import "github.com/mmynk/rentalfare/internal/models"

// PartyBalance aggregates the ledger movements of one party over many rentals.
type PartyBalance struct {
	Party    models.Party
	Debited  int64 // Total taken from the party
	Credited int64 // Total paid to the party
	Net      int64 // Credited - Debited
}

// CalculatePartyBalances sums ledgers per party. Parties appear in the order
// they are first seen. Since every ledger is balanced, the nets add up to zero.
func CalculatePartyBalances(ledgers [][]models.LedgerEntry) []PartyBalance {
	balances := make(map[models.Party]*PartyBalance)
	var order []models.Party

	for _, entries := range ledgers {
		for _, e := range entries {
			bal, exists := balances[e.Who]
			if !exists {
				bal = &PartyBalance{Party: e.Who}
				balances[e.Who] = bal
				order = append(order, e.Who)
			}

			switch e.Type {
			case models.Debit:
				bal.Debited += e.Amount
			case models.Credit:
				bal.Credited += e.Amount
			}
		}
	}

	result := make([]PartyBalance, 0, len(order))
	for _, p := range order {
		bal := balances[p]
		bal.Net = bal.Credited - bal.Debited
		result = append(result, *bal)
	}
	return result
}
