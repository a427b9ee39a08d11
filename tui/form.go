package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"tripchat/normalize"
	"tripchat/session"
)

// TripFields backs the trip form; Apply copies it onto a session.Form.
type TripFields struct {
	Destination string
	Budget      string
	Transport   string
	Interests   []string
	Message     string
}

// Apply copies the fields onto f. Dates stay with f's picker.
func (t TripFields) Apply(f *session.Form) {
	f.Destination = strings.TrimSpace(t.Destination)
	f.Budget = t.Budget
	f.Transport = t.Transport
	f.Message = strings.TrimSpace(t.Message)
	f.SetInterests(t.Interests)
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}

// NewTripForm builds the interactive trip form over fields.
func NewTripForm(fields *TripFields) *huh.Form {
	if fields.Transport == "" {
		fields.Transport = session.Transports[0]
	}

	budgets := make([]huh.Option[string], 0, len(normalize.Brackets))
	for _, b := range normalize.Brackets {
		budgets = append(budgets, huh.NewOption(b.Label, b.Value))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Placeholder("Where to?").
				Value(&fields.Destination).
				Validate(required("destination")),
			huh.NewSelect[string]().
				Title("Budget").
				Options(budgets...).
				Value(&fields.Budget),
			huh.NewSelect[string]().
				Title("Transport").
				Options(huh.NewOptions(session.Transports...)...).
				Value(&fields.Transport),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Interests").
				Options(huh.NewOptions(session.InterestOptions...)...).
				Value(&fields.Interests),
			huh.NewText().
				Title("Message").
				Placeholder("Tell us about your trip").
				Value(&fields.Message).
				Validate(required("message")),
		),
	)
}
