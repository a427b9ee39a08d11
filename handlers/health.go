package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose reachability the health check reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthHandler(db Pinger, searcher FlightSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if db == nil {
			dbStatus = "disabled"
		} else if err := db.Ping(c.Request.Context()); err != nil {
			dbStatus = "error: " + err.Error()
		}

		flightData := "estimated"
		if searcher != nil && searcher.Configured() {
			flightData = "live"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  "TripChat API",
			"database": dbStatus,
			"flights":  flightData,
		})
	}
}
