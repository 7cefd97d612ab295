package scryfall

import (
	"testing"

	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/stretchr/testify/assert"
)

func TestMatchesName(t *testing.T) {
	tests := []struct {
		name     string
		card     string
		printing string
		want     bool
	}{
		{name: "exact", card: "Counterspell", printing: "Counterspell", want: true},
		{name: "full split name", card: "Fire // Ice", printing: "Fire // Ice", want: true},
		{name: "front face", card: "Fire", printing: "Fire // Ice", want: true},
		{name: "back face", card: "Ice", printing: "Fire // Ice", want: false},
		{name: "prefix only", card: "Fire", printing: "Fire Ants", want: false},
		{name: "case sensitive", card: "counterspell", printing: "Counterspell", want: false},
		{name: "longer name", card: "Lightning Bolt", printing: "Lightning Bolt Barrage", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesName(tt.card, carddata.Printing{Name: tt.printing}))
		})
	}
}

func TestFilterPrintings(t *testing.T) {
	printings := []carddata.Printing{
		{Name: "Ponder", Set: "lrw"},
		{Name: "Ponderous Thing", Set: "xxx"},
		{Name: "Ponder", Set: "m12"},
		{Name: "Ponder // Reflect", Set: "yyy"},
	}

	kept := FilterPrintings("Ponder", printings)

	var sets []string
	for _, printing := range kept {
		assert.True(t, MatchesName("Ponder", printing))
		sets = append(sets, printing.Set)
	}
	assert.Equal(t, []string{"lrw", "m12", "yyy"}, sets)

	assert.Empty(t, FilterPrintings("Brainstorm", printings))
}
