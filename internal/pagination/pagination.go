package pagination

import (
	"strconv"
	"strings"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 10

// State carries the page numbers handed to rendering. Prev is not clamped:
// at page 0 it is -1, which the template treats as "no previous page".
type State struct {
	Page int `json:"page"`
	Next int `json:"next"`
	Prev int `json:"prev"`
}

// ResolvePage maps the raw page query parameter to a page number.
// Absent, negative-prefixed, and unparsable inputs all resolve to page 0.
func ResolvePage(raw string) int {
	if raw == "" {
		return 0
	}
	if strings.HasPrefix(raw, "-") {
		return 0
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return page
}

// Offset converts a page number into a row offset.
func Offset(page int) int {
	return page * PageSize
}

// NewState builds the pagination state for a resolved page number.
func NewState(page int) State {
	return State{Page: page, Next: page + 1, Prev: page - 1}
}
