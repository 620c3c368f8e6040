package packager

import "strings"

// PageSize is a page geometry in twentieths of a point.
type PageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	PageA4     = PageSize{Name: "a4", Width: 11906, Height: 16838}
	PageLetter = PageSize{Name: "letter", Width: 12240, Height: 15840}
)

// DefaultMargin is one inch.
const DefaultMargin = 1440

// ParsePageSize looks up a page size by name, case-insensitively.
func ParsePageSize(name string) (PageSize, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a4":
		return PageA4, true
	case "letter":
		return PageLetter, true
	}
	return PageSize{}, false
}
