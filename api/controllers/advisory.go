package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/agrobert/agrobert-backend/api/responses"
	"github.com/agrobert/agrobert-backend/api/validators"
	"github.com/agrobert/agrobert-backend/internal/simulation"
	"github.com/agrobert/agrobert-backend/pkg/logger"
)

// PredictRequest asks for a price outlook. DaysAhead accepts a number or a
// numeric string and defaults to a week.
type PredictRequest struct {
	Commodity string `json:"commodity" validate:"required"`
	Market    string `json:"market" validate:"required"`
	DaysAhead any    `json:"daysAhead"`
}

// PredictResponse bundles the band, the headline number, the chart series,
// and the explanation factors.
type PredictResponse struct {
	PredictionReport simulation.PriceReport `json:"prediction_report"`
	Prediction       PredictionHeadline     `json:"prediction"`
	ChartData        simulation.ChartData   `json:"chartData"`
	XAI              []simulation.Factor    `json:"xai"`
}

// PredictionHeadline is the single number older dashboard panels read.
type PredictionHeadline struct {
	PredictedModalPriceINR int `json:"predicted_modal_price_INR"`
}

// Predict runs the simulated prediction for a commodity and market.
func Predict(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body PredictRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		days := parseDaysAhead(body.DaysAhead)
		report := engine.PredictPrice(body.Commodity, body.Market, days)

		responses.WriteSuccess(w, PredictResponse{
			PredictionReport: report,
			Prediction:       PredictionHeadline{PredictedModalPriceINR: report.AveragePrice},
			ChartData:        engine.HistoricalSeries(report.AveragePrice, days),
			XAI:              engine.XAIInsights(),
		})
	}
}

func parseDaysAhead(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		return 7
	default:
		return 7
	}
}

// SentimentRequest carries the text to score.
type SentimentRequest struct {
	Text string `json:"text"`
}

// AnalyzeSentiment scores a headline or snippet.
func AnalyzeSentiment(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body SentimentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, engine.AnalyzeSentiment(body.Text))
	}
}

// Weather reports the simulated forecast for a market. Passing lat and lon
// switches the display name to a generic label.
func Weather(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		market := validators.QueryString(r, "market", "Delhi")
		hasCoords := r.URL.Query().Get("lat") != "" && r.URL.Query().Get("lon") != ""
		responses.WriteSuccess(w, engine.Weather(market, hasCoords))
	}
}

// CropRequest carries the recommendation inputs. The numeric fields accept
// any JSON type; unparseable values yield the Unknown advice.
type CropRequest struct {
	Soil     string `json:"soil"`
	Rainfall any    `json:"rainfall"`
	PH       any    `json:"ph"`
	Temp     any    `json:"temp"`
}

// RecommendCrop applies the advisory rule table.
func RecommendCrop(engine *simulation.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body CropRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, engine.RecommendCrop(simulation.CropQuery{
			Soil:     body.Soil,
			Rainfall: body.Rainfall,
			PH:       body.PH,
			Temp:     body.Temp,
		}))
	}
}
