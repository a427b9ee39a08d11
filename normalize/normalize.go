// Package normalize turns the trip form's human-readable values into the
// canonical fields of a flight-search request.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reason names why a date token was rejected.
type Reason string

const (
	ReasonArity      Reason = "expected month/day/year"
	ReasonEmptyPart  Reason = "empty date component"
	ReasonNotNumeric Reason = "date component is not numeric"
)

// ParseError is returned by ParseDate and ParseDateRange.
type ParseError struct {
	Token  string
	Reason Reason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse date %q: %s", e.Token, e.Reason)
}

var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ParseDate converts "M/D/YYYY" to "YYYY-MM-DD". Month and day are
// zero-padded; the values are not checked against the calendar, so
// "13/40/2026" yields "2026-13-40".
func ParseDate(token string) (string, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return "", &ParseError{Token: token, Reason: ReasonArity}
	}

	nums := make([]string, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return "", &ParseError{Token: token, Reason: ReasonEmptyPart}
		}
		if !isDigits(p) {
			return "", &ParseError{Token: token, Reason: ReasonNotNumeric}
		}
		nums[i] = p
	}

	// Digits-only and non-empty, Atoi can only fail on overflow.
	month, err := strconv.Atoi(nums[0])
	if err != nil {
		return "", &ParseError{Token: token, Reason: ReasonNotNumeric}
	}
	day, err := strconv.Atoi(nums[1])
	if err != nil {
		return "", &ParseError{Token: token, Reason: ReasonNotNumeric}
	}

	return fmt.Sprintf("%s-%02d-%02d", nums[2], month, day), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DateRange is a parsed "M/D/YYYY - M/D/YYYY" range in ISO form.
type DateRange struct {
	Start string
	End   string
}

func (r DateRange) String() string {
	return r.Start + " to " + r.End
}

// ParseDateRange splits input on "-" and parses the first two segments.
// Anything after a second hyphen is ignored, so a locale format that uses
// hyphens inside a date will misparse.
func ParseDateRange(input string) (DateRange, error) {
	parts := strings.Split(input, "-")
	if len(parts) < 2 {
		return DateRange{}, &ParseError{Token: input, Reason: ReasonArity}
	}

	start, err := ParseDate(strings.TrimSpace(parts[0]))
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate(strings.TrimSpace(parts[1]))
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end}, nil
}

// NormalizeDateRange returns "YYYY-MM-DD to YYYY-MM-DD" for a picker range.
// Input that already carries an ISO date is returned unchanged, as is
// anything that fails to parse.
func NormalizeDateRange(input string) string {
	if HasISODate(input) {
		return input
	}
	r, err := ParseDateRange(input)
	if err != nil {
		return input
	}
	return r.String()
}

// HasISODate reports whether s contains a YYYY-MM-DD substring.
func HasISODate(s string) bool {
	return isoDatePattern.MatchString(s)
}

// ExtractISODates returns the first two YYYY-MM-DD substrings of s. ok is
// false when there is none; ret is empty for a one-way search.
func ExtractISODates(s string) (depart, ret string, ok bool) {
	found := isoDatePattern.FindAllString(s, 2)
	switch len(found) {
	case 0:
		return "", "", false
	case 1:
		return found[0], "", true
	default:
		return found[0], found[1], true
	}
}

// NormalizeBudget returns the upper bound of a bracket such as "2000-4000".
// Open-ended brackets ("5000+") and empty input mean no limit and yield "".
func NormalizeBudget(bracket string) string {
	if bracket == "" || strings.Contains(bracket, "+") {
		return ""
	}
	parts := strings.Split(bracket, "-")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
