package services

import (
	"fmt"
	"time"

	"tripchat/flights"
)

// Source values reported on a flights response.
const (
	SourceLive      = "live"
	SourceEstimated = "estimated"
)

type routeInfo struct {
	basePrice float64
	duration  int // minutes
}

var fallbackRoutes = map[string]routeInfo{
	"JFK-LHR": {450, 420}, "LHR-JFK": {450, 480},
	"JFK-CDG": {480, 440}, "CDG-JFK": {480, 500},
	"BOS-LHR": {420, 395}, "LHR-BOS": {420, 450},
	"BOS-CDG": {460, 420}, "CDG-BOS": {460, 480},
	"JFK-NRT": {900, 840}, "NRT-JFK": {900, 780},
	"JFK-LAX": {250, 380}, "LAX-JFK": {250, 330},
	"BOS-MIA": {180, 210}, "MIA-BOS": {180, 200},
	"JFK-DXB": {750, 760}, "DXB-JFK": {750, 840},
	"LHR-CDG": {80, 75}, "CDG-LHR": {80, 75},
	"JFK-FCO": {520, 530}, "FCO-JFK": {520, 600},
}

type airlineOption struct {
	code     string
	number   string
	priceMod float64
	stops    int
}

var fallbackAirlines = []airlineOption{
	{"DL", "104", 1.00, 0},
	{"BA", "212", 1.15, 0},
	{"AA", "100", 1.05, 0},
	{"B6", "817", 0.75, 1},
	{"TK", "12", 0.85, 1},
}

// FallbackOffers produces deterministic estimated offers for q without an
// upstream call. Offers above q.MaxPrice are left out, and a date that is
// not a real calendar day yields no offers.
func FallbackOffers(q Query) []flights.Offer {
	info, ok := fallbackRoutes[q.Origin+"-"+q.Destination]
	if !ok {
		info = routeInfo{350, 240}
	}

	depDate, err := time.Parse("2006-01-02", q.DepartDate)
	if err != nil {
		return nil
	}
	var retDate time.Time
	if q.ReturnDate != "" {
		if retDate, err = time.Parse("2006-01-02", q.ReturnDate); err != nil {
			return nil
		}
	}

	offers := make([]flights.Offer, 0, len(fallbackAirlines))
	for i, opt := range fallbackAirlines {
		price := float64(int(info.basePrice*opt.priceMod/5) * 5)
		if q.MaxPrice != nil && price > float64(*q.MaxPrice) {
			continue
		}

		dur := info.duration
		if opt.stops > 0 {
			dur += 90
		}

		offer := flights.Offer{
			ID:          fmt.Sprintf("est-%d", i+1),
			Price:       flights.Price{Total: fmt.Sprintf("%.2f", price), Currency: "USD"},
			FlightCodes: []string{opt.code + " " + opt.number},
			Outbound:    estimatedLeg(q.Origin, q.Destination, depDate, 6+i*3, dur, opt),
		}
		if q.ReturnDate != "" {
			offer.FlightCodes = append(offer.FlightCodes, fmt.Sprintf("%s %s1", opt.code, opt.number))
			offer.Inbound = estimatedLeg(q.Destination, q.Origin, retDate, 8+i*2, dur, opt)
		}
		offers = append(offers, offer)
	}
	return offers
}

func estimatedLeg(from, to string, day time.Time, hour, minutes int, opt airlineOption) *flights.Leg {
	dep := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	arr := dep.Add(time.Duration(minutes) * time.Minute)
	return &flights.Leg{
		From:         from,
		To:           to,
		DepartAt:     dep.Format("2006-01-02T15:04:05"),
		ArriveAt:     arr.Format("2006-01-02T15:04:05"),
		Stops:        opt.stops,
		Duration:     formatDurationMin(minutes),
		Airlines:     []string{airlineName(opt.code, nil)},
		CarrierCodes: []string{opt.code},
	}
}
