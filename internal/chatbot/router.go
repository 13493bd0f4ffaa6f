package chatbot

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agrobert/agrobert-backend/pkg/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const chatPriceHorizonDays = 7

// PriceSource supplies the simulated modal price the router quotes when a
// commodity is recognized.
type PriceSource interface {
	AveragePrice(commodity string, market string, daysAhead int) int
}

// Generator is the free-form fallback used when no rule matches. Implemented
// by the Gemini collaborator; nil disables the fallback entirely.
type Generator interface {
	Generate(ctx context.Context, query string, lang Language, greeting string) (string, error)
}

// Router answers chat queries by keyword rules first and the generator last.
// It never fails: generator errors are logged and the default answer is
// returned instead.
type Router struct {
	prices    PriceSource
	generator Generator
	logg      *logger.Logger
}

func NewRouter(prices PriceSource, generator Generator, logg *logger.Logger) *Router {
	return &Router{prices: prices, generator: generator, logg: logg}
}

// Respond resolves a query in the requested language.
//
// Matching order: greeting keywords, then commodity + market (quoting a
// simulated price), then the generic price/weather/recommend buckets, then
// the generator. Keyword checks are plain substring tests on the lowercased
// query, and the first table entry that matches wins.
func (r *Router) Respond(ctx context.Context, query string, lang Language) string {
	lowered := strings.ToLower(query)
	responses := responsesFor(lang)

	if containsAny(lowered, greetingKeywords) {
		return responses.Greeting
	}

	if commodity, ok := matchCommodity(lowered); ok {
		market := matchMarket(lowered)
		price := r.prices.AveragePrice(commodity.Name, market, chatPriceHorizonDays)
		return renderPriceDetail(responses.PriceDetail, commodity, market, price, lang)
	}

	switch {
	case containsAny(lowered, priceKeywords):
		return responses.Price
	case containsAny(lowered, weatherKeywords):
		return responses.Weather
	case containsAny(lowered, recommendKeywords):
		return responses.Recommend
	}

	if r.generator != nil {
		answer, err := r.generator.Generate(ctx, query, lang, responses.Greeting)
		if err != nil {
			r.logg.Error(ctx, "chat generator failed, using default answer", err)
		} else if answer != "" {
			return answer
		}
	}

	return responses.Default
}

func containsAny(query string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(query, k) {
			return true
		}
	}
	return false
}

func matchCommodity(query string) (commodityEntry, bool) {
	for _, entry := range commodityTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(query, keyword) {
				return entry, true
			}
		}
	}
	return commodityEntry{}, false
}

// matchMarket returns the display name of the first recognized market, or
// Delhi when none appears in the query.
func matchMarket(query string) string {
	for _, market := range marketKeywords {
		if strings.Contains(query, market) {
			return capitalize(market)
		}
	}
	return "Delhi"
}

func renderPriceDetail(template string, commodity commodityEntry, market string, price int, lang Language) string {
	display := commodity.Name
	switch lang {
	case LangHindi:
		if len(commodity.Keywords) > 1 {
			display = commodity.Keywords[1]
		}
	case LangKannada:
		if len(commodity.Keywords) > 2 {
			display = commodity.Keywords[2]
		}
	}

	replacer := strings.NewReplacer(
		"{commodity}", capitalize(display),
		"{market}", market,
		"{price}", formatPrice(price),
	)
	return replacer.Replace(template)
}

// formatPrice renders the quoted price with thousands separators and two
// decimals, e.g. 2,315.00.
func formatPrice(price int) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", number.Decimal(price,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// capitalize uppercases the first rune and lowercases the rest. Scripts
// without case, like Devanagari and Kannada, pass through unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
