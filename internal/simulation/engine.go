package simulation

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

// PriceReport is the simulated prediction band for one commodity and market.
type PriceReport struct {
	AveragePrice int `json:"average_price"`
	LowPrice     int `json:"low_price"`
	HighPrice    int `json:"high_price"`
}

// SentimentResult scores a piece of text on a [-1, 1] scale.
type SentimentResult struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// ChartData is a date-aligned price series for the frontend chart.
type ChartData struct {
	Dates  []string `json:"dates"`
	Prices []int    `json:"prices"`
}

// Factor is one explainability entry attached to a prediction.
type Factor struct {
	Factor     string  `json:"factor"`
	Impact     string  `json:"impact"`
	Reason     string  `json:"reason"`
	Importance float64 `json:"importance"`
}

// WeatherReport is the simulated forecast for a market.
type WeatherReport struct {
	Market    string `json:"market"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Impact    string `json:"impact"`
}

// CropQuery carries the raw recommendation inputs. Numeric fields accept
// whatever JSON type the frontend sends; unparseable values produce the
// Unknown advice rather than an error.
type CropQuery struct {
	Soil     string
	Rainfall any
	PH       any
	Temp     any
}

// CropAdvice names the recommended crop and why.
type CropAdvice struct {
	Crop   string `json:"crop"`
	Reason string `json:"reason"`
}

var basePrices = map[string]int{
	"wheat":  2200,
	"rice":   3000,
	"cotton": 6000,
	"onion":  1700,
	"potato": 1500,
	"maize":  1800,
	"tomato": 1200,
	"banana": 1800,
}

const defaultBasePrice = 2500

var weatherConditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Humid", "Rainy"}

type tempRange struct {
	min, max int
}

var marketTemps = map[string]tempRange{
	"Delhi":     {28, 42},
	"Mumbai":    {25, 34},
	"Bengaluru": {20, 32},
	"Kolkata":   {26, 36},
}

var defaultTempRange = tempRange{24, 38}

// Engine produces all the simulated analytics. Randomness is bounded so the
// numbers stay plausible; a mutex guards the shared source since handlers run
// concurrently.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewEngine builds an engine with a time-seeded random source.
func NewEngine() *Engine {
	seed := uint64(time.Now().UnixNano())
	return &Engine{
		rng: rand.New(rand.NewPCG(seed, seed>>1)),
		now: time.Now,
	}
}

// PredictPrice derives a price band from the commodity's base price. The
// horizon drifts the average, and the two metro markets carry a premium.
func (e *Engine) PredictPrice(commodity string, market string, daysAhead int) PriceReport {
	base := defaultBasePrice
	if p, ok := basePrices[strings.ToLower(commodity)]; ok {
		base = p
	}

	avg := float64(base) + float64(daysAhead)*e.uniform(-5, 10)
	switch strings.ToLower(market) {
	case "mumbai", "delhi":
		avg *= 1.05
	default:
		avg *= 1.01
	}
	avgPrice := round(avg)

	low := round(float64(avgPrice) * (1 - e.uniform(0.05, 0.15)))
	high := round(float64(avgPrice) * (1 + e.uniform(0.05, 0.15)))

	return PriceReport{
		AveragePrice: avgPrice,
		LowPrice:     low,
		HighPrice:    high,
	}
}

// AveragePrice is the chatbot-facing view of PredictPrice.
func (e *Engine) AveragePrice(commodity string, market string, daysAhead int) int {
	return e.PredictPrice(commodity, market, daysAhead).AveragePrice
}

// AnalyzeSentiment buckets a random score at the ±0.3 thresholds. The text
// itself does not influence the outcome.
func (e *Engine) AnalyzeSentiment(_ string) SentimentResult {
	score := e.uniform(-1, 1)
	sentiment := "Neutral"
	if score > 0.3 {
		sentiment = "Positive"
	} else if score < -0.3 {
		sentiment = "Negative"
	}
	return SentimentResult{Sentiment: sentiment, Score: score}
}

// HistoricalSeries fabricates a 30-day price history that walks toward the
// predicted price, then appends today and the prediction date.
func (e *Engine) HistoricalSeries(predictedPrice int, daysAhead int) ChartData {
	today := e.now()
	base := float64(predictedPrice) / (1 + e.uniform(-0.02, 0.05))

	var data ChartData
	for i := 30; i > 0; i-- {
		day := today.AddDate(0, 0, -i)
		price := base + math.Sqrt(float64(i))*e.uniform(-15, 20) + e.uniform(-25, 25)
		data.Dates = append(data.Dates, day.Format("2006-01-02"))
		data.Prices = append(data.Prices, round(price))
	}

	data.Dates = append(data.Dates, today.Format("2006-01-02"))
	data.Prices = append(data.Prices, data.Prices[len(data.Prices)-1])

	future := today.AddDate(0, 0, daysAhead)
	data.Dates = append(data.Dates, future.Format("2006-01-02"))
	data.Prices = append(data.Prices, predictedPrice)

	return data
}

// XAIInsights picks three of the five explanation factors at random and
// orders them by importance, highest first.
func (e *Engine) XAIInsights() []Factor {
	factors := []Factor{
		{"Recent rainfall", e.choiceImpact(), "Influences soil moisture.", e.uniform(0.1, 0.5)},
		{"Mandi arrivals", "Negative", "Higher supply typically lowers prices.", e.uniform(0.3, 0.8)},
		{"News sentiment", "Positive", "Positive news boosts market confidence.", e.uniform(0.2, 0.6)},
		{"Global market trends", "Negative", "International prices affect domestic rates.", e.uniform(0.4, 0.9)},
		{"Fuel prices", "Negative", "Increases transportation costs.", e.uniform(0.1, 0.4)},
	}

	e.mu.Lock()
	e.rng.Shuffle(len(factors), func(i, j int) {
		factors[i], factors[j] = factors[j], factors[i]
	})
	e.mu.Unlock()

	top := factors[:3]
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			if top[j].Importance > top[i].Importance {
				top[i], top[j] = top[j], top[i]
			}
		}
	}
	return top
}

// Weather simulates a forecast for the market. When the caller supplied
// coordinates the display name becomes generic, but the temperature range
// still keys off the market parameter.
func (e *Engine) Weather(market string, hasCoords bool) WeatherReport {
	display := market
	if hasCoords {
		display = "Your Location"
	}

	tr := defaultTempRange
	if r, ok := marketTemps[market]; ok {
		tr = r
	}
	temp := e.randint(tr.min, tr.max)
	condition := e.choice(weatherConditions)

	impact := "Conditions are stable. No immediate significant impact on crops expected."
	if strings.Contains(condition, "Rain") {
		impact = "Rain is favorable for sowing, potentially stabilizing prices."
	} else if strings.Contains(condition, "Sunny") && temp > 38 {
		impact = "High temperatures may stress crops, potentially leading to a slight price increase."
	}

	return WeatherReport{Market: display, Temp: temp, Condition: condition, Impact: impact}
}

// RecommendCrop applies the rule table to the soil type and climate numbers.
func (e *Engine) RecommendCrop(q CropQuery) CropAdvice {
	rainfall, okR := toFloat(q.Rainfall)
	temp, okT := toFloat(q.Temp)
	_, okP := toFloat(q.PH)
	if !okR || !okT || !okP {
		return CropAdvice{Crop: "Unknown", Reason: "Invalid input data."}
	}

	soil := strings.ToLower(q.Soil)
	if isOneOf(soil, "black", "काली", "ಕಪ್ಪು") && rainfall > 1000 {
		return CropAdvice{Crop: "Cotton", Reason: "Black soil and high rainfall are ideal for cotton."}
	}
	if isOneOf(soil, "alluvial", "जलोढ़", "ಮೆಕ್ಕಲು") && rainfall > 1500 {
		return CropAdvice{Crop: "Rice", Reason: "Alluvial soil with abundant water is perfect for rice."}
	}
	if temp > 28 && rainfall < 800 {
		return CropAdvice{Crop: "Bajra", Reason: "This crop is resilient to high temperatures and lower rainfall."}
	}
	return CropAdvice{Crop: "Wheat", Reason: "Conditions are generally suitable for wheat cultivation."}
}

func isOneOf(value string, options ...string) bool {
	for _, o := range options {
		if value == o {
			return true
		}
	}
	return false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func (e *Engine) uniform(min, max float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return min + e.rng.Float64()*(max-min)
}

// randint is inclusive on both ends.
func (e *Engine) randint(min, max int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return min + e.rng.IntN(max-min+1)
}

func (e *Engine) choice(options []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return options[e.rng.IntN(len(options))]
}

func (e *Engine) choiceImpact() string {
	if e.randint(0, 1) == 0 {
		return "Positive"
	}
	return "Negative"
}

func round(x float64) int {
	return int(math.Round(x))
}
