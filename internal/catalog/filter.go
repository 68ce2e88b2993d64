package catalog

import (
	"strconv"
	"strings"

	"github.com/five82/shelf/internal/openlibrary"
)

// Availability narrows results by ebook access.
type Availability int

const (
	AvailabilityAny Availability = iota
	AvailabilityPublic
	AvailabilityRestricted
)

// Label returns the option text shown in the filter panel.
func (a Availability) Label() string {
	switch a {
	case AvailabilityPublic:
		return "Public"
	case AvailabilityRestricted:
		return "Not Public"
	default:
		return "All"
	}
}

// Next cycles forward through the options.
func (a Availability) Next() Availability {
	switch a {
	case AvailabilityAny:
		return AvailabilityPublic
	case AvailabilityPublic:
		return AvailabilityRestricted
	default:
		return AvailabilityAny
	}
}

// Prev cycles backward through the options.
func (a Availability) Prev() Availability {
	switch a {
	case AvailabilityAny:
		return AvailabilityRestricted
	case AvailabilityRestricted:
		return AvailabilityPublic
	default:
		return AvailabilityAny
	}
}

// Criteria is the committed filter applied to a result set.
type Criteria struct {
	YearCeiling  *int
	Availability Availability
}

// NewCriteria converts a draft year and availability into Criteria. A blank
// or non-numeric year means no ceiling.
func NewCriteria(year string, availability Availability) Criteria {
	c := Criteria{Availability: availability}
	if y, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		c.YearCeiling = &y
	}
	return c
}

// IsZero reports whether the criteria filter nothing.
func (c Criteria) IsZero() bool {
	return c.YearCeiling == nil && c.Availability == AvailabilityAny
}

// Matches reports whether b passes every active criterion. A record without a
// first publish year never passes a year ceiling.
func (c Criteria) Matches(b openlibrary.Book) bool {
	if c.YearCeiling != nil {
		if b.FirstPublishYear == nil || *b.FirstPublishYear > *c.YearCeiling {
			return false
		}
	}
	switch c.Availability {
	case AvailabilityPublic:
		return b.IsPublic()
	case AvailabilityRestricted:
		return !b.IsPublic()
	}
	return true
}

// Visible derives the records that pass c. The result is always a fresh
// slice; books is never modified.
func Visible(books []openlibrary.Book, c Criteria) []openlibrary.Book {
	out := make([]openlibrary.Book, 0, len(books))
	for _, b := range books {
		if c.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}
