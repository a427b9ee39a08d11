package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripchat/database"
	"tripchat/flights"
	"tripchat/normalize"
	"tripchat/services"
)

// DefaultSearchOrigin is used when the origin is missing or unresolvable.
const DefaultSearchOrigin = "JFK"

var errBudgetNotNumeric = errors.New("budget must be numeric")

// FlightSearcher runs live flight searches.
type FlightSearcher interface {
	Configured() bool
	SearchOffers(ctx context.Context, q services.Query) ([]flights.Offer, error)
}

// PlaceResolver turns free-text places into IATA codes.
type PlaceResolver interface {
	Resolve(ctx context.Context, query string) (string, bool)
}

// SearchHistory records answered searches. A nil SearchHistory disables
// recording.
type SearchHistory interface {
	SaveSearch(ctx context.Context, s *database.Search) error
	GetSearch(ctx context.Context, id string) (*database.Search, error)
	RecentSearches(ctx context.Context, limit int) ([]database.Search, error)
}

// FlightsHandler answers POST /api/flights.
func FlightsHandler(searcher FlightSearcher, places PlaceResolver, history SearchHistory, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		var req flights.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		ctx := c.Request.Context()

		depart, ret, ok := normalize.ExtractISODates(req.Dates)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be in YYYY-MM-DD format"})
			return
		}

		originInput := strings.TrimSpace(req.Origin)
		if originInput == "" {
			originInput = DefaultSearchOrigin
		}
		origin, ok := places.Resolve(ctx, originInput)
		if !ok {
			origin = DefaultSearchOrigin
		}

		destination, ok := places.Resolve(ctx, req.Destination)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Could not resolve destination '%s'", req.Destination)})
			return
		}

		maxPrice, err := parseBudget(req.Budget)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Budget must be numeric"})
			return
		}

		q := services.Query{
			Origin:      origin,
			Destination: destination,
			DepartDate:  depart,
			ReturnDate:  ret,
			MaxPrice:    maxPrice,
		}

		var offers []flights.Offer
		source := services.SourceLive
		if searcher != nil && searcher.Configured() {
			offers, err = searcher.SearchOffers(ctx, q)
			if err != nil {
				log.Printf("❌ Amadeus flight search failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Amadeus request failed", "message": err.Error()})
				return
			}
			log.Printf("✅ Amadeus: %d live offers %s → %s", len(offers), origin, destination)
		} else {
			offers = services.FallbackOffers(q)
			source = services.SourceEstimated
		}
		if offers == nil {
			offers = []flights.Offer{}
		}

		resp := flights.Response{
			Offers:      offers,
			Origin:      origin,
			Destination: destination,
			DepartDate:  depart,
			ReturnDate:  ret,
			Source:      source,
			SavedAt:     now().Format(time.RFC3339),
		}

		if history != nil {
			search := &database.Search{
				ID:          uuid.New().String(),
				Origin:      origin,
				Destination: destination,
				DepartDate:  depart,
				ReturnDate:  ret,
				Budget:      maxPrice,
				Transport:   strings.TrimSpace(req.Transport),
				Message:     strings.TrimSpace(req.Message),
				Source:      source,
				Offers:      offers,
			}
			if err := history.SaveSearch(ctx, search); err != nil {
				log.Printf("⚠️  Failed to save search: %v", err)
			} else {
				resp.SearchID = search.ID
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// parseBudget reads an optional numeric budget, truncating any fraction.
// The result fits the history table's INTEGER column.
func parseBudget(budget string) (*int, error) {
	budget = strings.TrimSpace(budget)
	if budget == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(budget, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > math.MaxInt32 {
		return nil, errBudgetNotNumeric
	}
	v := int(f)
	return &v, nil
}
