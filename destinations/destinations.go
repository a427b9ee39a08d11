// Package destinations serves the static destination grid and the
// per-city details shown when a card is opened.
package destinations

import (
	"strings"

	anyascii "github.com/anyascii/go"
)

type City struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Card is a grid entry with its favorite state.
type Card struct {
	City
	Favorited bool `json:"favorited"`
}

type Details struct {
	Attractions []string `json:"attractions"`
	Food        []string `json:"food"`
	Sightseeing []string `json:"sightseeing"`
}

var genericDetails = Details{
	Attractions: []string{"Historic center", "Popular museums", "Local parks"},
	Food:        []string{"Top local dishes", "Street food highlights", "Well-rated cafes"},
	Sightseeing: []string{"City viewpoints", "Architectural highlights", "Evening entertainment"},
}

// Catalog returns a copy of the grid in display order.
func Catalog() []City {
	out := make([]City, len(catalog))
	copy(out, catalog)
	return out
}

// Sorted returns the grid with favorites first. Each group keeps catalog
// order.
func Sorted(favorites []string) []Card {
	fav := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		fav[fold(f)] = true
	}

	cards := make([]Card, 0, len(catalog))
	for _, c := range catalog {
		if fav[fold(c.Name)] {
			cards = append(cards, Card{City: c, Favorited: true})
		}
	}
	for _, c := range catalog {
		if !fav[fold(c.Name)] {
			cards = append(cards, Card{City: c})
		}
	}
	return cards
}

// Lookup finds a catalog city ignoring case, spacing and diacritics.
func Lookup(name string) (City, bool) {
	key := fold(name)
	for _, c := range catalog {
		if fold(c.Name) == key {
			return c, true
		}
	}
	return City{}, false
}

// DetailsFor returns the attractions, food and sightseeing lists for name.
// Unknown cities get generic suggestions.
func DetailsFor(name string) Details {
	if c, ok := Lookup(name); ok {
		name = c.Name
	}
	if d, ok := details[name]; ok {
		return d
	}
	return genericDetails
}

func fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(anyascii.Transliterate(s))), " ")
}
