package scryfall

import (
	"fmt"

	"github.com/lepinkainen/paupercube/internal/carddata"
)

// SearchResult is one page of a card search.
type SearchResult struct {
	Object     string              `json:"object"`
	TotalCards int                 `json:"total_cards"`
	HasMore    bool                `json:"has_more"`
	NextPage   string              `json:"next_page,omitempty"`
	Data       []carddata.Printing `json:"data"`
	Warnings   []string            `json:"warnings,omitempty"`
}

// APIError is the error object Scryfall returns with non-2xx responses.
type APIError struct {
	Object   string   `json:"object"`
	Code     string   `json:"code"`
	Status   int      `json:"status"`
	Details  string   `json:"details"`
	Type     string   `json:"type,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall: HTTP %d %s: %s", e.Status, e.Code, e.Details)
	}
	return fmt.Sprintf("scryfall: HTTP %d %s", e.Status, e.Code)
}
