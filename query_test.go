package qntxwikidata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQuery(t *testing.T) {
	q := buildSearchQuery("Elvis Presley")

	// Fixed clauses of the search shape.
	assert.Contains(t, q, "SELECT DISTINCT ?item ?itemLabel ?itemDescription")
	assert.Contains(t, q, "wdt:P31 wd:Q5")
	assert.Contains(t, q, `rdfs:label|skos:altLabel`)
	assert.Contains(t, q, `schema:isPartOf <https://en.wikipedia.org/>`)
	assert.Contains(t, q, "(SAMPLE(?dob) AS ?dateOfBirth)")
	assert.Contains(t, q, "(SAMPLE(?dod) AS ?dateOfDeath)")
	assert.Contains(t, q, "(SAMPLE(?img) AS ?image)")
	assert.Contains(t, q, "GROUP BY ?item ?itemLabel ?itemDescription ?article")
}

func TestBuildSearchQuery_EncodesTerm(t *testing.T) {
	tests := []struct {
		name string
		term string
	}{
		{"double quote", `say "hi"`},
		{"closing quote with clause", `x"@en . ?item wdt:P31 wd:Q5 . FILTER("`},
		{"non-ascii", "Dvořák"},
		{"backslash", `a\b`},
		{"newline", "line\nbreak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := buildSearchQuery(tt.term)

			// The raw term must never appear inside the query text;
			// anything that could close the string literal has to be
			// percent-encoded away.
			assert.NotContains(t, q, tt.term)

			// Two quotes delimit the label literal, two more the label
			// service language. An encoded term adds none.
			assert.Equal(t, 4, strings.Count(q, `"`))
		})
	}
}

func TestBuildEntityQuery(t *testing.T) {
	q := buildEntityQuery(303)

	assert.Contains(t, q, "FILTER (?item = <http://www.wikidata.org/entity/Q303>)")
	assert.NotContains(t, q, "rdfs:label|skos:altLabel")

	// Same joins and aggregation as the search shape.
	assert.Contains(t, q, "wdt:P31 wd:Q5")
	assert.Contains(t, q, "(SAMPLE(?dob) AS ?dateOfBirth)")
	assert.Contains(t, q, "GROUP BY ?item ?itemLabel ?itemDescription ?article")
}
