// Package report turns the card cache into the by-set and by-name tables.
package report

import (
	"math"
	"strconv"
	"time"
)

// SetSeparator joins set names in the by-name view.
const SetSeparator = " "

const releaseDateLayout = time.DateOnly

// SetRow is one printing in the by-set view.
type SetRow struct {
	Set             string `json:"set"`
	ReleaseDate     string `json:"release_date"`
	CardName        string `json:"card_name"`
	Count           int    `json:"count"`
	CollectorNumber string `json:"collector_number"`
	ManaCost        string `json:"mana_cost"`
	TypeLine        string `json:"type_line"`
	Rarity          string `json:"rarity"`
	Price           string `json:"price"`
}

// NameRow is one card in the by-name view.
type NameRow struct {
	CardName string `json:"card_name"`
	Count    int    `json:"count"`
	Sets     string `json:"sets"`
	ManaCost string `json:"mana_cost"`
	TypeLine string `json:"type_line"`
}

// BySetHeader is the column schema of the by-set table.
var BySetHeader = []string{
	"Set", "Release Date", "Card Name", "Occurrence Count", "Collector Number",
	"Mana Cost", "Type Line", "Rarity", "Price",
}

// ByNameHeader is the column schema of the by-name table.
var ByNameHeader = []string{"Card Name", "Occurrence Count", "Sets", "Mana Cost", "Type Line"}

// collectorValue parses the leading digits of a collector number.
// Numbers without leading digits have no value and report false.
func collectorValue(number string) (int, bool) {
	end := 0
	for end < len(number) && number[end] >= '0' && number[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.Atoi(number[:end])
	if err != nil {
		return math.MaxInt, true
	}
	return value, true
}

// compareCollector orders collector numbers numerically, with numbers that
// have no value last.
func compareCollector(a, b string) int {
	av, aok := collectorValue(a)
	bv, bok := collectorValue(b)
	switch {
	case aok && bok:
		return compareInt(av, bv)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return 0
	}
}

// compareReleaseDate orders ISO dates ascending, with unparsable dates last.
func compareReleaseDate(a, b string) int {
	at, aerr := time.Parse(releaseDateLayout, a)
	bt, berr := time.Parse(releaseDateLayout, b)
	switch {
	case aerr == nil && berr == nil:
		return at.Compare(bt)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
