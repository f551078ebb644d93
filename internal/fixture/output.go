package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mmynk/rentalfare/internal/models"
)

// platformName is how the platform party appears in output documents.
const platformName = "drivy"

type outputDocument struct {
	Rentals []rentalOutput `json:"rentals"`
}

type rentalOutput struct {
	ID      int64          `json:"id"`
	Options []string       `json:"options"`
	Actions []actionOutput `json:"actions"`
}

type actionOutput struct {
	Who    string `json:"who"`
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
}

func partyName(p models.Party) string {
	if p == models.PartyPlatform {
		return platformName
	}
	return string(p)
}

func toOutputDocument(results []models.RentalResult) outputDocument {
	doc := outputDocument{Rentals: make([]rentalOutput, 0, len(results))}
	for _, r := range results {
		out := rentalOutput{
			ID:      r.ID,
			Options: make([]string, 0, len(r.Options)),
			Actions: make([]actionOutput, 0, len(r.Actions)),
		}
		for _, o := range r.Options {
			out.Options = append(out.Options, string(o))
		}
		for _, a := range r.Actions {
			out.Actions = append(out.Actions, actionOutput{
				Who:    partyName(a.Who),
				Type:   string(a.Type),
				Amount: a.Amount,
			})
		}
		doc.Rentals = append(doc.Rentals, out)
	}
	return doc
}

// EncodeOutput writes results as an indented output document.
func EncodeOutput(w io.Writer, results []models.RentalResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toOutputDocument(results)); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// WriteOutput writes results to path, creating parent directories as needed.
func WriteOutput(path string, results []models.RentalResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := EncodeOutput(f, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}
