package services

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	anyascii "github.com/anyascii/go"
	"github.com/jszwec/csvutil"
	"github.com/sahilm/fuzzy"
)

//go:embed data/airports.csv
var airportsCSV []byte

var iataRE = regexp.MustCompile(`^[A-Z]{3}$`)

// minFuzzyLen keeps very short inputs from matching almost any city.
const minFuzzyLen = 3

// Airport is one row of the embedded airports table.
type Airport struct {
	IATA    string `csv:"iata"`
	Name    string `csv:"name"`
	City    string `csv:"city"`
	Country string `csv:"country"`
}

// LocationLookup resolves a keyword through a remote location service.
type LocationLookup interface {
	LookupLocation(ctx context.Context, keyword string) (string, error)
}

// Resolver turns free-text places into IATA codes.
type Resolver struct {
	remote   LocationLookup
	airports []Airport
	cities   []string          // folded city names, first-seen order
	byCity   map[string]string // folded city -> first airport listed
}

// NewResolver loads the embedded airports table. remote may be nil, in
// which case only the table is consulted.
func NewResolver(remote LocationLookup) (*Resolver, error) {
	var airports []Airport
	if err := csvutil.Unmarshal(airportsCSV, &airports); err != nil {
		return nil, fmt.Errorf("failed to decode airports table: %w", err)
	}

	r := &Resolver{
		remote:   remote,
		airports: airports,
		byCity:   make(map[string]string, len(airports)),
	}
	for _, a := range airports {
		code := strings.ToUpper(strings.TrimSpace(a.IATA))
		if !iataRE.MatchString(code) {
			continue
		}
		city := foldPlace(a.City)
		if _, ok := r.byCity[city]; !ok {
			r.byCity[city] = code
			r.cities = append(r.cities, city)
		}
	}
	return r, nil
}

// Airports reports how many rows the table holds.
func (r *Resolver) Airports() int {
	return len(r.airports)
}

// Resolve returns the IATA code for query. Three-letter inputs are taken as
// codes; anything else goes to the remote lookup and then the local table.
func (r *Resolver) Resolve(ctx context.Context, query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	if code := strings.ToUpper(query); iataRE.MatchString(code) {
		return code, true
	}

	if r.remote != nil {
		code, err := r.remote.LookupLocation(ctx, query)
		switch {
		case err == nil:
			return code, true
		case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrLocationNotFound):
		default:
			log.Printf("⚠️  Location lookup for %q failed, using local airports: %v", query, err)
		}
	}

	return r.ResolveLocal(query)
}

// ResolveLocal matches query against the airports table: an exact city name
// first, then the best fuzzy match.
func (r *Resolver) ResolveLocal(query string) (string, bool) {
	q := foldPlace(query)
	if q == "" {
		return "", false
	}
	if code, ok := r.byCity[q]; ok {
		return code, true
	}
	if len(q) < minFuzzyLen {
		return "", false
	}

	matches := fuzzy.Find(q, r.cities)
	if len(matches) == 0 {
		return "", false
	}
	return r.byCity[matches[0].Str], true
}

func foldPlace(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(anyascii.Transliterate(s))), " ")
}
