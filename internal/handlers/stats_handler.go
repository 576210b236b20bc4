package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptofolio/internal/services"
)

// StatsHandler handles portfolio statistics requests.
type StatsHandler struct {
	statsService services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Value handles the portfolio valuation endpoint.
// @Summary     Portfolio value
// @Description Total invested amount, current value, and profit/loss
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioValueStats "Portfolio value"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/portfolio/value [get]
func (h *StatsHandler) Value(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.PortfolioValue(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Summary handles the per-symbol summary endpoint.
// @Summary     Portfolio summary
// @Description Per-symbol aggregates with overall totals
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioSummaryStats "Portfolio summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/portfolio/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.PortfolioSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// History handles the chronological accumulation endpoint.
// @Summary     Portfolio history
// @Description Purchases ordered by date with running cumulative totals
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioHistoryStats "Portfolio history"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/portfolio/history [get]
func (h *StatsHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.PortfolioHistory(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Distribution handles the per-symbol share endpoint.
// @Summary     Portfolio distribution
// @Description Each symbol's share of the total value, largest first
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioDistributionStats "Portfolio distribution"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/portfolio/distribution [get]
func (h *StatsHandler) Distribution(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.PortfolioDistribution(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
