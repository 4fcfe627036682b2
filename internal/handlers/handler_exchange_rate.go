package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/core/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to stored exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("/:from/:to", h.listRates)
		rates.GET("/:from/:to/latest", h.getLatestRate)
	}
}

func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.rateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, services.ErrSameCurrencyPair) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

func (h *exchangeRateHandler) getLatestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := strings.ToUpper(c.Param("from"))
	to := strings.ToUpper(c.Param("to"))

	asOf, ok := parseTimeParam(c, "asOf", time.Now().UTC(), true)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date"})
		return
	}

	rate, err := h.rateService.GetLatestRate(c.Request.Context(), from, to, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No rate stored for " + from + "/" + to})
		} else {
			logger.Error("Failed to get latest rate", slog.String("error", err.Error()), slog.String("pair", from+"/"+to))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

func (h *exchangeRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := strings.ToUpper(c.Param("from"))
	to := strings.ToUpper(c.Param("to"))

	rates, err := h.rateService.ListRates(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()), slog.String("pair", from+"/"+to))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rates": dto.ToListExchangeRateResponse(rates)})
}
