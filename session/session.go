// Package session holds the state of one trip-planning form: the fields the
// user filled in and the interests toggled on, owned by the form instead of
// living at package scope.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tripchat/flights"
	"tripchat/normalize"
	"tripchat/picker"
)

var (
	// ErrEmptyMessage means there is nothing to send; callers ignore the send.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrMissingFields blocks the send until the required fields are filled.
	ErrMissingFields = errors.New("missing destination, dates, or budget")
)

// MissingFieldsAlert is shown to the user when ErrMissingFields blocks a send.
const MissingFieldsAlert = "Please fill in destination, dates, and budget to continue."

// Transports are the transport options offered by the form.
var Transports = []string{"Flight", "Train", "Car", "Bus"}

// InterestOptions are the interest chips offered by the form.
var InterestOptions = []string{"Culture", "Food", "History", "Nature", "Adventure", "Nightlife", "Shopping", "Relaxation"}

// Form is one chat-style trip form.
type Form struct {
	Destination string
	Budget      string
	Transport   string
	Message     string

	Dates     *picker.Picker
	interests []string
}

// New returns an empty form whose date field is driven by a picker using now
// as its clock.
func New(now func() time.Time) *Form {
	return &Form{
		Transport: Transports[0],
		Dates:     picker.New(now),
	}
}

// DateText returns the raw contents of the date field.
func (f *Form) DateText() string {
	return strings.TrimSpace(f.Dates.Value())
}

// ToggleInterest selects name, or deselects it when already selected.
// It reports whether name is selected afterwards.
func (f *Form) ToggleInterest(name string) bool {
	name = strings.TrimSpace(name)
	for i, in := range f.interests {
		if in == name {
			f.interests = append(f.interests[:i], f.interests[i+1:]...)
			return false
		}
	}
	f.interests = append(f.interests, name)
	return true
}

// SetInterests replaces the selection.
func (f *Form) SetInterests(names []string) {
	f.interests = f.interests[:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			f.interests = append(f.interests, n)
		}
	}
}

// Interests returns a copy of the selected interests in selection order.
func (f *Form) Interests() []string {
	out := make([]string, len(f.interests))
	copy(out, f.interests)
	return out
}

// Validate reports whether the form can be sent.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Message) == "" {
		return ErrEmptyMessage
	}
	if strings.TrimSpace(f.Destination) == "" || f.DateText() == "" || strings.TrimSpace(f.Budget) == "" {
		return ErrMissingFields
	}
	return nil
}

// Payload builds the flight-search request. Values that fail to normalize
// are sent raw; the parse failures are returned as warnings.
func (f *Form) Payload() (flights.Request, []error) {
	var warnings []error

	raw := f.DateText()
	dates := normalize.NormalizeDateRange(raw)
	if raw != "" && !normalize.HasISODate(raw) {
		if _, err := normalize.ParseDateRange(raw); err != nil {
			warnings = append(warnings, fmt.Errorf("dates sent unnormalized: %w", err))
		}
	}

	budget := strings.TrimSpace(f.Budget)
	limit := normalize.NormalizeBudget(budget)
	if budget != "" && limit == "" && !strings.Contains(budget, "+") {
		warnings = append(warnings, fmt.Errorf("budget %q has no upper bound, searching without a limit", budget))
	}

	return flights.Request{
		Origin:      flights.DefaultOrigin,
		Destination: strings.TrimSpace(f.Destination),
		Dates:       dates,
		Budget:      limit,
		Transport:   strings.TrimSpace(f.Transport),
		Message:     strings.TrimSpace(f.Message),
	}, warnings
}

// Itinerary renders the placeholder itinerary shown in the chat log.
func (f *Form) Itinerary() string {
	return Itinerary(f.Destination, f.DateText(), f.Budget, f.Transport, f.interests, f.Message)
}

// Itinerary renders the placeholder itinerary for the given form values.
func Itinerary(destination, dates, budget, transport string, interests []string, message string) string {
	in := "general sightseeing"
	if len(interests) > 0 {
		in = strings.Join(interests, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Great! I'm planning a trip to %s from %s with a $%s budget\n", destination, dates, budget)
	fmt.Fprintf(&b, "Transportation: %s\n", transport)
	fmt.Fprintf(&b, "Your interests: %s\n", in)
	fmt.Fprintf(&b, "Special requests: %s\n\n", message)
	b.WriteString("Your personalized itinerary is being generated...")
	return b.String()
}
