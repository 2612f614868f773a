package qntxwikidata

import (
	"fmt"
	"net/url"
)

// entityURIPrefix is the canonical entity URI prefix; the numeric
// identifier follows the "Q".
const entityURIPrefix = "http://www.wikidata.org/entity/Q"

// Only two query shapes are supported. Both select the same variables:
// ?item ?itemLabel ?itemDescription ?dateOfBirth ?dateOfDeath ?image
// ?article. Birth, death and image are optional properties that may
// hold several candidate values per entity, so they are collapsed with
// SAMPLE(); rows are grouped to undo the fan-out from the OPTIONAL joins.
const queryBody = `?item wdt:P31 wd:Q5 .
  ?article schema:about ?item ;
           schema:isPartOf <https://en.wikipedia.org/> .
  OPTIONAL { ?item wdt:P569 ?dob . }
  OPTIONAL { ?item wdt:P570 ?dod . }
  OPTIONAL { ?item wdt:P18 ?img . }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
GROUP BY ?item ?itemLabel ?itemDescription ?article`

const querySelect = `SELECT DISTINCT ?item ?itemLabel ?itemDescription ` +
	`(SAMPLE(?dob) AS ?dateOfBirth) (SAMPLE(?dod) AS ?dateOfDeath) (SAMPLE(?img) AS ?image) ?article WHERE {`

// buildSearchQuery produces the search-by-name shape: humans whose
// English label or alias equals the term, restricted to entities with
// an English Wikipedia article.
//
// The term is percent-encoded BEFORE interpolation into the query text.
// Encoding only the surrounding URL is not enough: a term carrying a
// closing quote could otherwise smuggle extra query clauses.
func buildSearchQuery(term string) string {
	escaped := url.QueryEscape(term)
	return fmt.Sprintf(`%s
  ?item rdfs:label|skos:altLabel "%s"@en .
  %s`, querySelect, escaped, queryBody)
}

// buildEntityQuery produces the get-by-id shape: the same joins and
// aggregation, filtered to the single entity whose URI is the canonical
// prefix plus the identifier.
func buildEntityQuery(id int64) string {
	return fmt.Sprintf(`%s
  FILTER (?item = <%s%d>)
  %s`, querySelect, entityURIPrefix, id, queryBody)
}
