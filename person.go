package qntxwikidata

import (
	"fmt"
	"time"
)

// Person is one human entity returned by the knowledge base. It is a
// plain value owned by the caller; nothing in the client retains it.
//
// Optional fields are pointers: nil means the endpoint supplied no value
// for the entity. Zero values are never used as a stand-in for "unknown"
// — a nil DateOfDeath distinguishes "alive or unknown" from any real
// date, and a nil Name from an entity that genuinely has an empty label.
type Person struct {
	// ID is the numeric part of the entity's Q-number, parsed from the
	// entity URI. Zero when the URI was malformed.
	ID int64

	// Name is the English label.
	Name *string

	// Description is the short English description.
	Description *string

	// DateOfBirth is a calendar date at midnight UTC.
	DateOfBirth *time.Time

	// DateOfDeath is a calendar date at midnight UTC; nil means alive
	// or unknown.
	DateOfDeath *time.Time

	// ImageURL points at the entity's image on Wikimedia Commons.
	ImageURL *string

	// ArticleURL points at the English Wikipedia article about the entity.
	ArticleURL *string
}

// QID returns the canonical Q-number form of the identifier, e.g. "Q303".
func (p Person) QID() string {
	return fmt.Sprintf("Q%d", p.ID)
}

// String renders a short log-friendly description of the person.
func (p Person) String() string {
	name := "unknown"
	if p.Name != nil {
		name = *p.Name
	}
	return fmt.Sprintf("%s (%s)", name, p.QID())
}
