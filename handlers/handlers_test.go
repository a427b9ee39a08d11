package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripchat/database"
	"tripchat/favorites"
	"tripchat/flights"
	"tripchat/obs"
	"tripchat/services"
)

type mockSearcher struct {
	mock.Mock
	configured bool
}

func (m *mockSearcher) Configured() bool { return m.configured }

func (m *mockSearcher) SearchOffers(ctx context.Context, q services.Query) ([]flights.Offer, error) {
	args := m.Called(ctx, q)
	offers, _ := args.Get(0).([]flights.Offer)
	return offers, args.Error(1)
}

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) SaveSearch(ctx context.Context, s *database.Search) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockHistory) GetSearch(ctx context.Context, id string) (*database.Search, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*database.Search)
	return s, args.Error(1)
}

func (m *mockHistory) RecentSearches(ctx context.Context, limit int) ([]database.Search, error) {
	args := m.Called(ctx, limit)
	s, _ := args.Get(0).([]database.Search)
	return s, args.Error(1)
}

type mapResolver map[string]string

func (r mapResolver) Resolve(_ context.Context, q string) (string, bool) {
	code, ok := r[q]
	return code, ok
}

var places = mapResolver{"Paris": "PAR", "BOS": "BOS", "JFK": "JFK"}

var fixedNow = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }

func newRouter(d Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if d.Places == nil {
		d.Places = places
	}
	if d.Now == nil {
		d.Now = fixedNow
	}
	router := gin.New()
	Register(router, d)
	return router
}

func do(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestFlights_LiveSearch(t *testing.T) {
	searcher := &mockSearcher{configured: true}
	limit := 1000
	searcher.On("SearchOffers", mock.Anything, services.Query{
		Origin: "BOS", Destination: "PAR", DepartDate: "2026-11-02", ReturnDate: "2026-11-09", MaxPrice: &limit,
	}).Return([]flights.Offer{{ID: "1", Price: flights.Price{Total: "512.30", Currency: "USD"}}}, nil)

	history := &mockHistory{}
	history.On("SaveSearch", mock.Anything, mock.MatchedBy(func(s *database.Search) bool {
		return s.Destination == "PAR" && s.Source == services.SourceLive && *s.Budget == 1000
	})).Return(nil)

	router := newRouter(Deps{Flights: searcher, History: history})
	rec := do(router, http.MethodPost, "/api/flights", flights.Request{
		Origin: "BOS", Destination: "Paris", Dates: "2026-11-02 to 2026-11-09", Budget: "1000",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp flights.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BOS", resp.Origin)
	assert.Equal(t, "PAR", resp.Destination)
	assert.Equal(t, "2026-11-02", resp.DepartDate)
	assert.Equal(t, "2026-11-09", resp.ReturnDate)
	assert.Equal(t, "live", resp.Source)
	assert.Equal(t, "2026-10-19T09:30:00Z", resp.SavedAt)
	assert.NotEmpty(t, resp.SearchID)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "512.30", resp.Offers[0].Price.Total)

	searcher.AssertExpectations(t)
	history.AssertExpectations(t)
}

func TestFlights_EstimatedWhenNotConfigured(t *testing.T) {
	router := newRouter(Deps{Flights: &mockSearcher{}})
	rec := do(router, http.MethodPost, "/api/flights", flights.Request{
		Destination: "Paris", Dates: "leaving 2026-11-02",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp flights.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "estimated", resp.Source)
	assert.Equal(t, "JFK", resp.Origin, "missing origin defaults")
	assert.Empty(t, resp.ReturnDate)
	assert.Empty(t, resp.SearchID)
	assert.NotEmpty(t, resp.Offers)
	for _, o := range resp.Offers {
		assert.Nil(t, o.Inbound)
	}
}

func TestFlights_NoMatchingOffersKeepsEmptyList(t *testing.T) {
	tests := []struct {
		name string
		req  flights.Request
	}{
		{"budget below every estimate", flights.Request{Destination: "Paris", Dates: "2026-11-02 to 2026-11-09", Budget: "10"}},
		{"not a calendar day", flights.Request{Destination: "Paris", Dates: "2026-13-40"}},
	}
	router := newRouter(Deps{Flights: &mockSearcher{}})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/api/flights", tt.req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"offers":[]`)
			assert.Equal(t, []any{}, decodeBody(t, rec)["offers"])
		})
	}
}

func TestFlights_RequestIDReachesSearcher(t *testing.T) {
	searcher := &mockSearcher{configured: true}
	searcher.On("SearchOffers", mock.MatchedBy(func(ctx context.Context) bool {
		id, _ := ctx.Value(obs.RequestIDKey).(string)
		return id == "req-42"
	}), mock.Anything).Return([]flights.Offer{}, nil)

	router := newRouter(Deps{Flights: searcher})
	body, _ := json.Marshal(flights.Request{Destination: "Paris", Dates: "2026-11-02"})
	req, _ := http.NewRequest(http.MethodPost, "/api/flights", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	searcher.AssertExpectations(t)
}

func TestRequestID_IssuedWhenMissing(t *testing.T) {
	router := newRouter(Deps{})
	rec := do(router, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestFlights_UnresolvableOriginFallsBack(t *testing.T) {
	router := newRouter(Deps{Flights: &mockSearcher{}})
	rec := do(router, http.MethodPost, "/api/flights", flights.Request{
		Origin: "Nowhere", Destination: "Paris", Dates: "2026-11-02",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "JFK", decodeBody(t, rec)["origin"])
}

func TestFlights_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		req  flights.Request
		want string
	}{
		{"no dates", flights.Request{Destination: "Paris", Dates: "11/2/2026 - 11/9/2026"}, "Dates must be in YYYY-MM-DD format"},
		{"unknown destination", flights.Request{Destination: "Atlantis", Dates: "2026-11-02"}, "Could not resolve destination 'Atlantis'"},
		{"budget", flights.Request{Destination: "Paris", Dates: "2026-11-02", Budget: "lots"}, "Budget must be numeric"},
	}
	router := newRouter(Deps{Flights: &mockSearcher{}})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/api/flights", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, decodeBody(t, rec)["error"])
		})
	}
}

func TestFlights_InvalidJSON(t *testing.T) {
	router := newRouter(Deps{Flights: &mockSearcher{}})
	req, _ := http.NewRequest(http.MethodPost, "/api/flights", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFlights_UpstreamFailure(t *testing.T) {
	searcher := &mockSearcher{configured: true}
	searcher.On("SearchOffers", mock.Anything, mock.Anything).Return(nil, errors.New("amadeus error (400): bad date"))

	router := newRouter(Deps{Flights: searcher})
	rec := do(router, http.MethodPost, "/api/flights", flights.Request{Destination: "Paris", Dates: "2026-11-02"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Amadeus request failed", body["error"])
	assert.Equal(t, "amadeus error (400): bad date", body["message"])
}

func TestFlights_HistoryFailureStillAnswers(t *testing.T) {
	history := &mockHistory{}
	history.On("SaveSearch", mock.Anything, mock.Anything).Return(errors.New("db down"))

	router := newRouter(Deps{Flights: &mockSearcher{}, History: history})
	rec := do(router, http.MethodPost, "/api/flights", flights.Request{Destination: "Paris", Dates: "2026-11-02"})

	require.Equal(t, http.StatusOK, rec.Code)
	_, hasID := decodeBody(t, rec)["search_id"]
	assert.False(t, hasID)
}

func TestParseBudget(t *testing.T) {
	v, err := parseBudget("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseBudget(" 1500.75 ")
	require.NoError(t, err)
	assert.Equal(t, 1500, *v)

	v, err = parseBudget("0")
	require.NoError(t, err)
	assert.Equal(t, 0, *v)

	for _, bad := range []string{"abc", "NaN", "Inf", "5000+", "-1", "1e30", "2147483648"} {
		_, err = parseBudget(bad)
		assert.Error(t, err, bad)
	}
}

func TestItinerary(t *testing.T) {
	router := newRouter(Deps{})
	rec := do(router, http.MethodPost, "/api/itinerary", ItineraryRequest{
		Destination: "Rome",
		Dates:       "2026-11-02 to 2026-11-09",
		Budget:      "2000",
		Interests:   []string{"Food", "History"},
		Message:     "window seat",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	text := decodeBody(t, rec)["itinerary"].(string)
	assert.Contains(t, text, "Great! I'm planning a trip to Rome from 2026-11-02 to 2026-11-09 with a $2000 budget")
	assert.Contains(t, text, "Transportation: Flight")
	assert.Contains(t, text, "Your interests: Food, History")
}

func TestItinerary_MissingFields(t *testing.T) {
	router := newRouter(Deps{})
	rec := do(router, http.MethodPost, "/api/itinerary", ItineraryRequest{Destination: "Rome"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please fill in destination, dates, and budget to continue.", decodeBody(t, rec)["error"])
}

func TestDestinationsAndFavorites(t *testing.T) {
	store := favorites.NewFileStore(filepath.Join(t.TempDir(), "favorites.json"))
	router := newRouter(Deps{Favorites: store})

	rec := do(router, http.MethodPost, "/api/favorites/tokyo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Tokyo", body["name"])
	assert.Equal(t, true, body["favorited"])

	rec = do(router, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"Tokyo"}, decodeBody(t, rec)["favorites"])

	rec = do(router, http.MethodGet, "/api/destinations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var grid struct {
		Destinations []struct {
			Name      string `json:"name"`
			Favorited bool   `json:"favorited"`
		} `json:"destinations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	require.Len(t, grid.Destinations, 30)
	assert.Equal(t, "Tokyo", grid.Destinations[0].Name)
	assert.True(t, grid.Destinations[0].Favorited)

	rec = do(router, http.MethodPost, "/api/favorites/Atlantis", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDestinationDetails(t *testing.T) {
	router := newRouter(Deps{})

	rec := do(router, http.MethodGet, "/api/destinations/paris", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Paris", body["name"])
	assert.NotEmpty(t, body["image"])

	rec = do(router, http.MethodGet, "/api/destinations/Wien", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "Wien", body["name"])
	assert.NotNil(t, body["details"])
}

func TestSearchPDF(t *testing.T) {
	history := &mockHistory{}
	history.On("GetSearch", mock.Anything, "abc").Return(&database.Search{
		ID: "abc", Origin: "JFK", Destination: "CDG", DepartDate: "2026-11-02",
		Source: services.SourceEstimated, Message: "aisle seat",
		Offers: services.FallbackOffers(services.Query{Origin: "JFK", Destination: "CDG", DepartDate: "2026-11-02"}),
	}, nil)
	history.On("GetSearch", mock.Anything, "missing").Return(nil, database.ErrNotFound)

	router := newRouter(Deps{History: history})

	rec := do(router, http.MethodGet, "/api/searches/abc/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = do(router, http.MethodGet, "/api/searches/missing/pdf", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearches_HistoryDisabled(t *testing.T) {
	router := newRouter(Deps{})

	assert.Equal(t, http.StatusServiceUnavailable, do(router, http.MethodGet, "/api/searches", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(router, http.MethodGet, "/api/searches/x/pdf", nil).Code)
}

func TestRecentSearches(t *testing.T) {
	history := &mockHistory{}
	history.On("RecentSearches", mock.Anything, maxRecentSearches).Return([]database.Search{{ID: "a"}}, nil)

	router := newRouter(Deps{History: history})

	rec := do(router, http.MethodGet, "/api/searches?limit=500", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["searches"], 1)

	rec = do(router, http.MethodGet, "/api/searches?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("refused") }

func TestHealth(t *testing.T) {
	rec := do(newRouter(Deps{}), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "disabled", body["database"])
	assert.Equal(t, "estimated", body["flights"])

	rec = do(newRouter(Deps{DB: failingPinger{}, Flights: &mockSearcher{configured: true}}), http.MethodGet, "/api/health", nil)
	body = decodeBody(t, rec)
	assert.Equal(t, "error: refused", body["database"])
	assert.Equal(t, "live", body["flights"])
}
