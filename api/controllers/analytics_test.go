package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrobert/agrobert-backend/internal/simulation"
)

func TestSentimentDistributionShape(t *testing.T) {
	handler := SentimentDistribution(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/sentiment-distribution", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body simulation.SentimentDistribution
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Positive == 0 && body.Negative == 0 && body.Neutral == 0 {
		t.Fatalf("expected non-zero counts, got %+v", body)
	}
}

func TestMarketComparisonUsesCommodityParam(t *testing.T) {
	handler := MarketComparison(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/market-comparison?commodity=onion", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body simulation.MarketComparison
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Labels) != 6 || len(body.Prices) != 6 {
		t.Fatalf("expected 6 markets, got %d/%d", len(body.Labels), len(body.Prices))
	}
	if body.Labels[0] != "Delhi" {
		t.Fatalf("unexpected first label %s", body.Labels[0])
	}
}

func TestModelPerformanceShape(t *testing.T) {
	handler := ModelPerformance(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/model-performance", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body simulation.ModelPerformance
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.AgrobertRMSE >= body.BaselineRMSE {
		t.Fatalf("expected the headline model to beat the baseline: %+v", body)
	}
	if len(body.KeyFeatures) != 3 {
		t.Fatalf("expected 3 key features, got %d", len(body.KeyFeatures))
	}
}

func TestHeatmapDataShape(t *testing.T) {
	handler := HeatmapData(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/heatmap-data?commodity=potato", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 35 {
		t.Fatalf("expected 35 states, got %d", len(body))
	}
	if _, ok := body["Karnataka"]; !ok {
		t.Fatalf("expected Karnataka in heatmap")
	}
}
