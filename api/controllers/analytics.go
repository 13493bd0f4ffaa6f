package controllers

import (
	"net/http"

	"github.com/agrobert/agrobert-backend/api/responses"
	"github.com/agrobert/agrobert-backend/api/validators"
	"github.com/agrobert/agrobert-backend/internal/simulation"
	"github.com/agrobert/agrobert-backend/pkg/logger"
)

// SentimentDistribution feeds the analytics pie chart.
func SentimentDistribution(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.SentimentBreakdown())
	}
}

// MarketComparison feeds the analytics bar chart for one commodity.
func MarketComparison(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commodity := validators.QueryString(r, "commodity", "unknown")
		responses.WriteSuccess(w, engine.CompareMarkets(commodity))
	}
}

// ModelPerformance reports the simulated accuracy comparison.
func ModelPerformance(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.Performance())
	}
}

// HeatmapData feeds the regional price heatmap.
func HeatmapData(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commodity := validators.QueryString(r, "commodity", "unknown")
		responses.WriteSuccess(w, engine.Heatmap(commodity))
	}
}
