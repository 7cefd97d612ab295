package scryfall

import "github.com/lepinkainen/paupercube/internal/carddata"

// MatchesName reports whether printing belongs to the card called name,
// either by its full name or by the front face of a multi-faced name.
func MatchesName(name string, printing carddata.Printing) bool {
	return printing.Name == name || printing.PrimaryName() == name
}

// FilterPrintings keeps the printings that belong to name, in order.
func FilterPrintings(name string, printings []carddata.Printing) []carddata.Printing {
	var kept []carddata.Printing
	for _, printing := range printings {
		if MatchesName(name, printing) {
			kept = append(kept, printing)
		}
	}
	return kept
}
