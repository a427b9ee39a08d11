package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripchat/destinations"
	"tripchat/favorites"
)

// DestinationsHandler lists the destination grid with favorites first. A
// failing favorites store degrades to catalog order.
func DestinationsHandler(store favorites.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		favs, err := store.Load(c.Request.Context())
		if err != nil {
			log.Printf("⚠️  Failed to load favorites: %v", err)
			favs = nil
		}
		c.JSON(http.StatusOK, gin.H{"destinations": destinations.Sorted(favs)})
	}
}

// DestinationDetailsHandler returns the details shown when a card opens.
// Cities outside the grid get generic suggestions.
func DestinationDetailsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		resp := gin.H{"name": name, "details": destinations.DetailsFor(name)}
		if city, ok := destinations.Lookup(name); ok {
			resp["name"] = city.Name
			resp["image"] = city.Image
		}
		c.JSON(http.StatusOK, resp)
	}
}

func FavoritesHandler(store favorites.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		favs, err := store.Load(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to load favorites: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": favs})
	}
}

// ToggleFavoriteHandler flips a grid city in or out of the favorites list.
func ToggleFavoriteHandler(store favorites.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		city, ok := destinations.Lookup(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown destination"})
			return
		}

		favs, on, err := favorites.Toggle(c.Request.Context(), store, city.Name)
		if err != nil {
			log.Printf("❌ Failed to toggle favorite %s: %v", city.Name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": city.Name, "favorited": on, "favorites": favs})
	}
}
