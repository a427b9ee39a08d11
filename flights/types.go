// Package flights holds the /api/flights contract shared by the service
// and its clients, and turns a response into displayable offer cards.
package flights

// DefaultOrigin is the departure airport the trip form always sends.
const DefaultOrigin = "BOS"

// Request is the body of POST /api/flights. Dates is either free text or
// "YYYY-MM-DD to YYYY-MM-DD"; an empty Budget means no upper bound.
type Request struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Budget      string `json:"budget"`
	Transport   string `json:"transport"`
	Message     string `json:"message"`
}

// Response is either a list of offers or an error. Offers is always
// encoded, as an empty array when nothing matched.
type Response struct {
	Offers  []Offer `json:"offers"`
	Error   string  `json:"error,omitempty"`
	Message string  `json:"message,omitempty"`

	SearchID    string `json:"search_id,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	DepartDate  string `json:"depart_date,omitempty"`
	ReturnDate  string `json:"return_date,omitempty"`
	Source      string `json:"source,omitempty"` // "live" or "estimated"
	SavedAt     string `json:"saved_at,omitempty"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// Offer is one priced itinerary.
type Offer struct {
	ID          string   `json:"id,omitempty"`
	Price       Price    `json:"price"`
	FlightCodes []string `json:"flightCodes"`
	Outbound    *Leg     `json:"outbound"`
	Inbound     *Leg     `json:"inbound,omitempty"`
}

// Leg is one direction of an offer.
type Leg struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	DepartAt     string   `json:"departAt"`
	ArriveAt     string   `json:"arriveAt"`
	Stops        int      `json:"stops"`
	Duration     string   `json:"duration"`
	Airlines     []string `json:"airlines"`
	CarrierCodes []string `json:"carrierCodes,omitempty"`
}
