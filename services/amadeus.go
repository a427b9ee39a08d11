package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"tripchat/flights"
	"tripchat/obs"
)

var (
	// ErrNotConfigured is returned by live calls when no credentials are set.
	ErrNotConfigured = errors.New("amadeus not configured")
	// ErrLocationNotFound means the keyword matched no city or airport.
	ErrLocationNotFound = errors.New("location not found")
)

// Query is one flight search. MaxPrice is nil when the budget is unbounded.
type Query struct {
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	MaxPrice    *int
}

// ─── Amadeus Client ───────────────────────────────────────────────────────────

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *retryablehttp.Client
}

type AmadeusOption func(*AmadeusClient)

// WithRetry overrides the retry budget and the backoff bounds.
func WithRetry(maxRetries int, waitMin, waitMax time.Duration) AmadeusOption {
	return func(c *AmadeusClient) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

func NewAmadeusClient(clientID, clientSecret, baseURL string, opts ...AmadeusOption) *AmadeusClient {
	hc := retryablehttp.NewClient()
	hc.RetryMax = 3
	hc.RetryWaitMin = 500 * time.Millisecond
	hc.RetryWaitMax = 4 * time.Second
	hc.Logger = nil
	hc.CheckRetry = retryPolicy
	hc.HTTPClient.Timeout = 30 * time.Second

	c := &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether live searches are possible.
func (c *AmadeusClient) Configured() bool {
	return c != nil && c.clientID != "" && c.clientSecret != ""
}

// WarmUp fetches the first token so misconfigured credentials show at startup.
func (c *AmadeusClient) WarmUp(ctx context.Context) {
	if !c.Configured() {
		log.Println("⚠️  AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set, flight search will use estimated data")
		return
	}
	if err := c.refreshToken(ctx); err != nil {
		log.Printf("⚠️  Amadeus token pre-warm failed: %v", err)
		return
	}
	log.Println("✅ Amadeus API authenticated")
}

// retryPolicy retries 429 and 5xx responses and transport errors, and stops
// as soon as the caller's context is done.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return false, err
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

func (c *AmadeusClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	body, status, err := c.getOnce(ctx, path, query)
	if err == nil && status == http.StatusUnauthorized {
		// token revoked before its expiry
		c.invalidateToken()
		body, status, err = c.getOnce(ctx, path, query)
	}
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", status, string(body))
	}
	return body, nil
}

func (c *AmadeusClient) getOnce(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("auth failed: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read amadeus response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// ─── Flight Search ────────────────────────────────────────────────────────────

// SearchOffers searches one-adult USD offers through the Flight Offers
// Search API and summarizes them with the response's carrier dictionary.
func (c *AmadeusClient) SearchOffers(ctx context.Context, q Query) (offers []flights.Offer, err error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	defer obs.Time(ctx, "amadeus.flight_offers")(&err)

	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartDate)
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	params.Set("adults", "1")
	params.Set("currencyCode", "USD")
	params.Set("max", "5")
	if q.MaxPrice != nil {
		params.Set("maxPrice", strconv.Itoa(*q.MaxPrice))
	}

	body, err := c.get(ctx, "/v2/shopping/flight-offers", params)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	return parseFlightOffers(body)
}

type amadeusEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type amadeusSegment struct {
	Departure   amadeusEndpoint `json:"departure"`
	Arrival     amadeusEndpoint `json:"arrival"`
	CarrierCode string          `json:"carrierCode"`
	Number      string          `json:"number"`
}

type amadeusItinerary struct {
	Duration string           `json:"duration"`
	Segments []amadeusSegment `json:"segments"`
}

type amadeusFlightOffer struct {
	ID    string `json:"id"`
	Price struct {
		Total      string `json:"total"`
		GrandTotal string `json:"grandTotal"`
		Currency   string `json:"currency"`
	} `json:"price"`
	Itineraries []amadeusItinerary `json:"itineraries"`
}

type amadeusFlightOffersResponse struct {
	Data         []amadeusFlightOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

func parseFlightOffers(data []byte) ([]flights.Offer, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	offers := make([]flights.Offer, 0, len(resp.Data))
	for _, o := range resp.Data {
		offers = append(offers, summarizeOffer(o, resp.Dictionaries.Carriers))
	}
	return offers, nil
}

func summarizeOffer(o amadeusFlightOffer, carriers map[string]string) flights.Offer {
	total := o.Price.Total
	if total == "" {
		total = o.Price.GrandTotal
	}

	offer := flights.Offer{
		ID:          o.ID,
		Price:       flights.Price{Total: total, Currency: o.Price.Currency},
		FlightCodes: []string{},
	}
	for _, it := range o.Itineraries {
		for _, s := range it.Segments {
			if s.CarrierCode != "" && s.Number != "" {
				offer.FlightCodes = append(offer.FlightCodes, s.CarrierCode+" "+s.Number)
			}
		}
	}
	if len(o.Itineraries) > 0 {
		offer.Outbound = summarizeItinerary(o.Itineraries[0], carriers)
	}
	if len(o.Itineraries) > 1 {
		offer.Inbound = summarizeItinerary(o.Itineraries[1], carriers)
	}
	return offer
}

func summarizeItinerary(it amadeusItinerary, carriers map[string]string) *flights.Leg {
	leg := &flights.Leg{
		Stops:        max(0, len(it.Segments)-1),
		Duration:     parseDuration(it.Duration),
		Airlines:     []string{},
		CarrierCodes: []string{},
	}
	if n := len(it.Segments); n > 0 {
		leg.From = it.Segments[0].Departure.IataCode
		leg.DepartAt = it.Segments[0].Departure.At
		leg.To = it.Segments[n-1].Arrival.IataCode
		leg.ArriveAt = it.Segments[n-1].Arrival.At
	}

	seen := make(map[string]bool)
	for _, s := range it.Segments {
		if s.CarrierCode == "" || seen[s.CarrierCode] {
			continue
		}
		seen[s.CarrierCode] = true
		leg.CarrierCodes = append(leg.CarrierCodes, s.CarrierCode)
		leg.Airlines = append(leg.Airlines, airlineName(s.CarrierCode, carriers))
	}
	return leg
}

// ─── Locations ────────────────────────────────────────────────────────────────

// LookupLocation resolves a free-text keyword to an IATA code, preferring
// city codes over airport codes.
func (c *AmadeusClient) LookupLocation(ctx context.Context, keyword string) (code string, err error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	defer obs.Time(ctx, "amadeus.locations")(&err)

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "CITY,AIRPORT")
	params.Set("page[limit]", "10")

	body, err := c.get(ctx, "/v1/reference-data/locations", params)
	if err != nil {
		return "", fmt.Errorf("location lookup failed: %w", err)
	}

	var resp struct {
		Data []struct {
			SubType  string `json:"subType"`
			IataCode string `json:"iataCode"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse locations: %w", err)
	}

	for _, want := range []string{"CITY", "AIRPORT"} {
		for _, loc := range resp.Data {
			if loc.SubType == want && loc.IataCode != "" {
				return loc.IataCode, nil
			}
		}
	}
	return "", ErrLocationNotFound
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

// parseDuration converts ISO 8601 duration (PT5H30M) to human readable (5h 30m)
func parseDuration(iso string) string {
	if iso == "" {
		return ""
	}
	iso = strings.TrimPrefix(iso, "PT")
	result := ""
	hIdx := strings.Index(iso, "H")
	if hIdx >= 0 {
		result += iso[:hIdx] + "h"
		iso = iso[hIdx+1:]
	}
	if mIdx := strings.Index(iso, "M"); mIdx >= 0 {
		if result != "" {
			result += " "
		}
		result += iso[:mIdx] + "m"
	}
	return result
}

func formatDurationMin(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

var knownAirlines = map[string]string{
	"TK": "Turkish Airlines",
	"LH": "Lufthansa",
	"AF": "Air France",
	"BA": "British Airways",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"FR": "Ryanair",
	"U2": "EasyJet",
	"W6": "Wizz Air",
	"UA": "United Airlines",
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"B6": "JetBlue Airways",
	"KL": "KLM",
	"IB": "Iberia",
	"AZ": "ITA Airways",
	"LX": "Swiss International Air Lines",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"NH": "ANA",
	"JL": "Japan Airlines",
	"EY": "Etihad Airways",
	"ET": "Ethiopian Airlines",
}

// airlineName prefers the response's own carrier dictionary, then the
// built-in names, then the bare code.
func airlineName(code string, carriers map[string]string) string {
	if name, ok := carriers[code]; ok && name != "" {
		return name
	}
	if name, ok := knownAirlines[code]; ok {
		return name
	}
	return code
}
