package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// Diff describes how an actual output document differs from the expected one.
type Diff struct {
	// Missing lists rental IDs present only in the expected document.
	Missing []int64

	// Unexpected lists rental IDs present only in the actual document.
	Unexpected []int64

	// Changed lists rental IDs present in both whose content differs.
	Changed []int64

	// Reordered is set when both documents hold the same rentals in a different order.
	Reordered bool
}

// Empty reports whether the documents are equal.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Unexpected) == 0 && len(d.Changed) == 0 && !d.Reordered
}

// Compare reads two output documents and reports their differences.
// Formatting and key order are irrelevant; an absent options list equals an empty one.
func Compare(actualPath, expectedPath string) (Diff, error) {
	actual, err := readOutput(actualPath)
	if err != nil {
		return Diff{}, err
	}
	expected, err := readOutput(expectedPath)
	if err != nil {
		return Diff{}, err
	}
	return diffDocuments(actual, expected), nil
}

func readOutput(path string) (outputDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return outputDocument{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc outputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return outputDocument{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	for i := range doc.Rentals {
		if doc.Rentals[i].Options == nil {
			doc.Rentals[i].Options = []string{}
		}
		if doc.Rentals[i].Actions == nil {
			doc.Rentals[i].Actions = []actionOutput{}
		}
	}
	return doc, nil
}

func diffDocuments(actual, expected outputDocument) Diff {
	var d Diff

	actualByID := make(map[int64]rentalOutput, len(actual.Rentals))
	for _, r := range actual.Rentals {
		actualByID[r.ID] = r
	}
	expectedByID := make(map[int64]rentalOutput, len(expected.Rentals))
	for _, r := range expected.Rentals {
		expectedByID[r.ID] = r
	}

	for _, want := range expected.Rentals {
		got, ok := actualByID[want.ID]
		if !ok {
			d.Missing = append(d.Missing, want.ID)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			d.Changed = append(d.Changed, want.ID)
		}
	}
	for _, got := range actual.Rentals {
		if _, ok := expectedByID[got.ID]; !ok {
			d.Unexpected = append(d.Unexpected, got.ID)
		}
	}

	if len(d.Missing) == 0 && len(d.Unexpected) == 0 && len(actual.Rentals) == len(expected.Rentals) {
		for i := range actual.Rentals {
			if actual.Rentals[i].ID != expected.Rentals[i].ID {
				d.Reordered = true
				break
			}
		}
	}
	return d
}
