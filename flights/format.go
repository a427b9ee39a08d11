package flights

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
)

// Kind classifies a search result for display.
type Kind string

const (
	KindError Kind = "error"
	KindEmpty Kind = "empty"
	KindList  Kind = "list"
)

const airlineFallback = "Airline unavailable"

// timeLayouts are tried in order; upstream offers carry local times without
// a zone.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const displayLayout = "Jan 02, 03:04 PM"

// LegView is a leg rendered for display.
type LegView struct {
	Route string
	Time  string
	Meta  string
}

// Card is one offer rendered for display.
type Card struct {
	Price    string
	Airline  string
	Codes    string
	Outbound LegView
	Inbound  *LegView
}

// Summary is the display classification of a response.
type Summary struct {
	Kind    Kind
	Error   string
	Message string
	Cards   []Card
}

// StopsLabel renders a stop count.
func StopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Nonstop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// FormatTime renders an ISO datetime as "Jan 02, 03:04 PM". Empty input
// yields "" and unparseable input is returned as is.
func FormatTime(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(displayLayout)
		}
	}
	return iso
}

// FormatLeg renders a leg. A nil leg renders with empty fields.
func FormatLeg(leg *Leg) LegView {
	if leg == nil {
		leg = &Leg{}
	}
	return LegView{
		Route: leg.From + " → " + leg.To,
		Time:  FormatTime(leg.DepartAt) + " → " + FormatTime(leg.ArriveAt),
		Meta:  StopsLabel(leg.Stops) + " • " + leg.Duration,
	}
}

// Summarize classifies resp. An error field wins over any offers.
func Summarize(resp *Response) Summary {
	if resp == nil {
		return Summary{Kind: KindEmpty}
	}
	if resp.Error != "" {
		return Summary{Kind: KindError, Error: resp.Error, Message: resp.Message}
	}
	if len(resp.Offers) == 0 {
		return Summary{Kind: KindEmpty}
	}

	cards := make([]Card, 0, len(resp.Offers))
	for _, o := range resp.Offers {
		cards = append(cards, cardFor(o))
	}
	return Summary{Kind: KindList, Cards: cards}
}

func cardFor(o Offer) Card {
	airline := airlineFallback
	if o.Outbound != nil && len(o.Outbound.Airlines) > 0 {
		airline = strings.Join(o.Outbound.Airlines, ", ")
	}

	card := Card{
		Price:    formatPrice(o.Price),
		Airline:  airline,
		Codes:    strings.Join(o.FlightCodes, " • "),
		Outbound: FormatLeg(o.Outbound),
	}
	if o.Inbound != nil {
		in := FormatLeg(o.Inbound)
		card.Inbound = &in
	}
	return card
}

func formatPrice(p Price) string {
	total := p.Total
	if total == "" {
		total = "?"
	}
	return NormalizeCurrency(p.Currency) + " " + total
}

// NormalizeCurrency returns the ISO 4217 code for code, or USD when code is
// empty. Unknown codes are passed through upper-cased.
func NormalizeCurrency(code string) string {
	if code == "" {
		return currency.USD.String()
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return unit.String()
}

// Headline is the chat line announcing the result.
func (s Summary) Headline() string {
	switch s.Kind {
	case KindError:
		if s.Message != "" {
			return fmt.Sprintf("❌ %s (%s)", s.Error, s.Message)
		}
		return "❌ " + s.Error
	case KindList:
		return fmt.Sprintf("✈️ Found %d flights!", len(s.Cards))
	default:
		return "No flights found."
	}
}
