package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripchat/session"
)

type ItineraryRequest struct {
	Destination string   `json:"destination"`
	Dates       string   `json:"dates"`
	Budget      string   `json:"budget"`
	Transport   string   `json:"transport"`
	Interests   []string `json:"interests"`
	Message     string   `json:"message"`
}

// ItineraryHandler answers POST /api/itinerary with the placeholder
// itinerary for a filled-in trip form.
func ItineraryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ItineraryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.Dates) == "" || strings.TrimSpace(req.Budget) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": session.MissingFieldsAlert})
			return
		}

		transport := req.Transport
		if transport == "" {
			transport = session.Transports[0]
		}

		c.JSON(http.StatusOK, gin.H{
			"itinerary": session.Itinerary(req.Destination, req.Dates, req.Budget, transport, req.Interests, req.Message),
		})
	}
}
