// Package carddata defines the card records fetched from Scryfall and the
// flat JSON cache that keeps them between runs.
package carddata

import "strings"

// FaceSeparator joins the faces of split and double-faced card names.
const FaceSeparator = " // "

// Prices holds the market prices Scryfall reports for a printing.
type Prices struct {
	USD     *string `json:"usd" yaml:"usd"`
	USDFoil *string `json:"usd_foil,omitempty" yaml:"usd_foil,omitempty"`
	EUR     *string `json:"eur,omitempty" yaml:"eur,omitempty"`
}

// CardFace is one face of a multi-faced card.
type CardFace struct {
	Name     string `json:"name" yaml:"name"`
	ManaCost string `json:"mana_cost" yaml:"mana_cost"`
	TypeLine string `json:"type_line" yaml:"type_line"`
}

// Printing is one edition of a card.
type Printing struct {
	Name            string     `json:"name" yaml:"name"`
	Set             string     `json:"set" yaml:"set"`
	SetName         string     `json:"set_name" yaml:"set_name"`
	SetType         string     `json:"set_type,omitempty" yaml:"set_type,omitempty"`
	ReleasedAt      string     `json:"released_at" yaml:"released_at"`
	CollectorNumber string     `json:"collector_number" yaml:"collector_number"`
	ManaCost        string     `json:"mana_cost" yaml:"mana_cost"`
	TypeLine        string     `json:"type_line" yaml:"type_line"`
	Rarity          string     `json:"rarity" yaml:"rarity"`
	Prices          Prices     `json:"prices" yaml:"prices"`
	Digital         bool       `json:"digital" yaml:"digital"`
	Lang            string     `json:"lang,omitempty" yaml:"lang,omitempty"`
	CardFaces       []CardFace `json:"card_faces,omitempty" yaml:"card_faces,omitempty"`
}

// PrimaryName returns the name of the front face.
func (p Printing) PrimaryName() string {
	front, _, _ := strings.Cut(p.Name, FaceSeparator)
	return front
}

// PriceUSD returns the USD price or an empty string when there is none.
func (p Printing) PriceUSD() string {
	if p.Prices.USD == nil {
		return ""
	}
	return *p.Prices.USD
}

// DisplayManaCost returns the mana cost, joining face costs for cards that
// only carry them per face.
func (p Printing) DisplayManaCost() string {
	if p.ManaCost != "" || len(p.CardFaces) == 0 {
		return p.ManaCost
	}
	costs := make([]string, 0, len(p.CardFaces))
	for _, face := range p.CardFaces {
		costs = append(costs, face.ManaCost)
	}
	return strings.Join(costs, FaceSeparator)
}

// DisplayTypeLine returns the type line, joining face type lines when the
// top-level value is empty.
func (p Printing) DisplayTypeLine() string {
	if p.TypeLine != "" || len(p.CardFaces) == 0 {
		return p.TypeLine
	}
	types := make([]string, 0, len(p.CardFaces))
	for _, face := range p.CardFaces {
		types = append(types, face.TypeLine)
	}
	return strings.Join(types, FaceSeparator)
}

// CardRecord is everything known about one card name.
type CardRecord struct {
	Printings  []Printing `json:"data" yaml:"printings"`
	Count      int        `json:"numberOfCubes" yaml:"occurrence_count"`
	TotalCards int        `json:"total_cards,omitempty" yaml:"total_cards,omitempty"`
	HasMore    bool       `json:"has_more,omitempty" yaml:"has_more,omitempty"`
}

// Empty reports whether the record carries no printings. Empty records mean
// "not found" and are never stored.
func (r *CardRecord) Empty() bool {
	return r == nil || len(r.Printings) == 0
}
