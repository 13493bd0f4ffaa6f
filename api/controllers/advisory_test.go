package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agrobert/agrobert-backend/internal/simulation"
)

func TestPredictReturnsFullReport(t *testing.T) {
	handler := Predict(simulation.NewEngine(), testLogger())

	payload := `{"commodity":"wheat","market":"Delhi","daysAhead":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body PredictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Prediction.PredictedModalPriceINR != body.PredictionReport.AveragePrice {
		t.Fatalf("headline %d should equal average %d", body.Prediction.PredictedModalPriceINR, body.PredictionReport.AveragePrice)
	}
	if len(body.ChartData.Dates) != 32 {
		t.Fatalf("expected 32 chart points, got %d", len(body.ChartData.Dates))
	}
	if len(body.XAI) != 3 {
		t.Fatalf("expected 3 xai factors, got %d", len(body.XAI))
	}
}

func TestPredictDefaultsDaysAhead(t *testing.T) {
	handler := Predict(simulation.NewEngine(), testLogger())

	// string horizon and missing horizon both work
	for _, payload := range []string{
		`{"commodity":"rice","market":"Pune","daysAhead":"14"}`,
		`{"commodity":"rice","market":"Pune"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("payload %s: expected 200, got %d", payload, rec.Code)
		}
	}
}

func TestPredictRequiresCommodityAndMarket(t *testing.T) {
	handler := Predict(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(`{"daysAhead":7}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeSentimentShape(t *testing.T) {
	handler := AnalyzeSentiment(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-sentiment", strings.NewReader(`{"text":"mandi prices rally"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body simulation.SentimentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Sentiment == "" {
		t.Fatalf("expected a sentiment label")
	}
}

func TestWeatherDefaultsToDelhi(t *testing.T) {
	handler := Weather(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/weather", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body simulation.WeatherReport
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Market != "Delhi" {
		t.Fatalf("expected Delhi default, got %s", body.Market)
	}
}

func TestWeatherWithCoords(t *testing.T) {
	handler := Weather(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/weather?market=Mumbai&lat=19.07&lon=72.87", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body simulation.WeatherReport
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Market != "Your Location" {
		t.Fatalf("expected generic market label, got %s", body.Market)
	}
}

func TestRecommendCropInvalidInput(t *testing.T) {
	handler := RecommendCrop(simulation.NewEngine(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/recommend-crop", strings.NewReader(`{"soil":"black","rainfall":"a lot","ph":6.5,"temp":30}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body simulation.CropAdvice
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Crop != "Unknown" {
		t.Fatalf("expected Unknown for invalid input, got %s", body.Crop)
	}
}

func TestNewsByLanguage(t *testing.T) {
	handler := News(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/news?lang=hi", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body []string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 3 {
		t.Fatalf("expected 3 headlines, got %d", len(body))
	}
}
