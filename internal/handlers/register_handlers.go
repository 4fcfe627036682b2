package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Account, services.Balance)
	registerJournalRoutes(v1, services.Journal)
	registerCurrencyRoutes(v1, services.Currency)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerReportingRoutes(v1, services.Reporting)
}

// parseTimeParam reads a query parameter as either an RFC3339 timestamp or a
// plain date, defaulting to the given fallback when absent. When endOfDay is
// set, a plain date is widened to the very end of that day so "balance as of
// 2025-06-30" includes the whole day.
func parseTimeParam(c *gin.Context, name string, fallback time.Time, endOfDay bool) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, true
	}
	return time.Time{}, false
}
