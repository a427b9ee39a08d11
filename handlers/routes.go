package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"tripchat/favorites"
)

// Deps are the collaborators of the API. History and DB stay nil when no
// database is configured.
type Deps struct {
	Flights   FlightSearcher
	Places    PlaceResolver
	History   SearchHistory
	DB        Pinger
	Favorites favorites.Store
	Now       func() time.Time
}

// Register mounts the API under /api.
func Register(r gin.IRouter, d Deps) {
	api := r.Group("/api", RequestID())
	{
		api.GET("/health", HealthHandler(d.DB, d.Flights))
		api.POST("/flights", FlightsHandler(d.Flights, d.Places, d.History, d.Now))
		api.POST("/itinerary", ItineraryHandler())
		api.GET("/destinations", DestinationsHandler(d.Favorites))
		api.GET("/destinations/:name", DestinationDetailsHandler())
		api.GET("/favorites", FavoritesHandler(d.Favorites))
		api.POST("/favorites/:name", ToggleFavoriteHandler(d.Favorites))
		api.GET("/searches", RecentSearchesHandler(d.History))
		api.GET("/searches/:id/pdf", SearchPDFHandler(d.History))
	}
}
