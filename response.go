package qntxwikidata

import (
	"strconv"
	"strings"
	"time"
)

// queryResponse mirrors the SPARQL JSON results format. Only the
// results.bindings path is read. A structurally valid document without
// that path decodes to zero bindings, which callers treat as "no
// results" — only a body that is not JSON at all is an error.
type queryResponse struct {
	Results struct {
		Bindings []binding `json:"bindings"`
	} `json:"results"`
}

// binding is one result row: query variable name to typed value. It
// never escapes the mapping layer.
type binding map[string]bindingValue

type bindingValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Variable names fixed by the two query shapes.
const (
	varItem        = "item"
	varLabel       = "itemLabel"
	varDescription = "itemDescription"
	varDateOfBirth = "dateOfBirth"
	varDateOfDeath = "dateOfDeath"
	varImage       = "image"
	varArticle     = "article"
)

// mapPerson converts one result row into a Person. Absent variables map
// to nil fields; malformed entity URIs and unparseable dates degrade to
// unset rather than erroring out the whole row.
func mapPerson(row binding) Person {
	return Person{
		ID:          parseEntityID(row),
		Name:        stringValue(row, varLabel),
		Description: stringValue(row, varDescription),
		DateOfBirth: dateValue(row, varDateOfBirth),
		DateOfDeath: dateValue(row, varDateOfDeath),
		ImageURL:    stringValue(row, varImage),
		ArticleURL:  stringValue(row, varArticle),
	}
}

func stringValue(row binding, name string) *string {
	v, ok := row[name]
	if !ok {
		return nil
	}
	s := v.Value
	return &s
}

// parseEntityID strips the canonical URI prefix and parses the numeric
// remainder. A URI no longer than the prefix, a foreign prefix, or a
// non-numeric remainder all map to 0.
func parseEntityID(row binding) int64 {
	v, ok := row[varItem]
	if !ok {
		return 0
	}
	uri := v.Value
	if len(uri) <= len(entityURIPrefix) || !strings.HasPrefix(uri, entityURIPrefix) {
		return 0
	}
	id, err := strconv.ParseInt(uri[len(entityURIPrefix):], 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// dateLayouts covers what the endpoint emits for xsd:dateTime literals
// plus bare dates. Times are discarded; only the calendar date matters.
var dateLayouts = []string{"2006-01-02T15:04:05Z", "2006-01-02"}

func dateValue(row binding, name string) *time.Time {
	v, ok := row[name]
	if !ok {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v.Value)
		if err != nil {
			continue
		}
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d
	}
	return nil
}
