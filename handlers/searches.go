package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripchat/database"
	"tripchat/flights"
	"tripchat/services"
	"tripchat/session"
)

const maxRecentSearches = 50

func historyDisabled(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search history is not enabled"})
}

// RecentSearchesHandler lists recorded searches, newest first.
func RecentSearchesHandler(history SearchHistory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if history == nil {
			historyDisabled(c)
			return
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(limit, maxRecentSearches)

		searches, err := history.RecentSearches(c.Request.Context(), limit)
		if err != nil {
			log.Printf("❌ Failed to list searches: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list searches"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"searches": searches})
	}
}

// SearchPDFHandler renders a recorded search as a PDF download.
func SearchPDFHandler(history SearchHistory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if history == nil {
			historyDisabled(c)
			return
		}

		id := c.Param("id")
		search, err := history.GetSearch(c.Request.Context(), id)
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Search not found"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to load search %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search"})
			return
		}

		pdfBytes, err := services.GenerateItineraryPDF(services.PDFData{
			SearchID:    search.ID,
			Origin:      search.Origin,
			Destination: search.Destination,
			DepartDate:  search.DepartDate,
			ReturnDate:  search.ReturnDate,
			Source:      search.Source,
			Itinerary:   itineraryFor(search),
			Cards:       flights.Summarize(&flights.Response{Offers: search.Offers}).Cards,
			Generated:   search.CreatedAt,
		})
		if err != nil {
			log.Printf("❌ PDF generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=tripchat-"+search.Destination+".pdf")
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}

func itineraryFor(s *database.Search) string {
	if s.Message == "" {
		return ""
	}
	dates := s.DepartDate
	if s.ReturnDate != "" {
		dates += " to " + s.ReturnDate
	}
	budget := "open"
	if s.Budget != nil {
		budget = strconv.Itoa(*s.Budget)
	}
	transport := s.Transport
	if transport == "" {
		transport = session.Transports[0]
	}
	return session.Itinerary(s.Destination, dates, budget, transport, nil, s.Message)
}
