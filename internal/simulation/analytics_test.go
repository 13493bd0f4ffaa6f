package simulation

import "testing"

func TestSentimentBreakdownRanges(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 50; i++ {
		d := e.SentimentBreakdown()
		if d.Positive < 20 || d.Positive > 50 {
			t.Fatalf("positive %d out of range", d.Positive)
		}
		if d.Negative < 5 || d.Negative > 25 {
			t.Fatalf("negative %d out of range", d.Negative)
		}
		if d.Neutral < 10 || d.Neutral > 30 {
			t.Fatalf("neutral %d out of range", d.Neutral)
		}
	}
}

func TestCompareMarketsShapeAndBounds(t *testing.T) {
	e := NewEngine()
	c := e.CompareMarkets("onion")

	wantLabels := []string{"Delhi", "Mumbai", "Bengaluru", "Kolkata", "Chennai", "Davanagere"}
	if len(c.Labels) != len(wantLabels) || len(c.Prices) != len(wantLabels) {
		t.Fatalf("unexpected shape labels=%d prices=%d", len(c.Labels), len(c.Prices))
	}
	for i, l := range wantLabels {
		if c.Labels[i] != l {
			t.Fatalf("label %d: got %s want %s", i, c.Labels[i], l)
		}
	}
	// onion base 1700 at zero horizon, ±10% wobble on the 1.01-adjusted base
	base := round(1700 * 1.01)
	for _, p := range c.Prices {
		if float64(p) < float64(base)*0.89 || float64(p) > float64(base)*1.11 {
			t.Fatalf("price %d outside wobble band around %d", p, base)
		}
	}
}

func TestPerformanceImprovementIsConsistent(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 20; i++ {
		p := e.Performance()
		if p.BaselineRMSE < 190 || p.BaselineRMSE > 230 {
			t.Fatalf("baseline rmse %d out of range", p.BaselineRMSE)
		}
		if p.AgrobertRMSE < 60 || p.AgrobertRMSE > 85 {
			t.Fatalf("agrobert rmse %d out of range", p.AgrobertRMSE)
		}
		if p.ImprovementPercent <= 0 {
			t.Fatalf("expected positive improvement, got %f", p.ImprovementPercent)
		}
		if len(p.KeyFeatures) != 3 {
			t.Fatalf("expected 3 key features, got %d", len(p.KeyFeatures))
		}
		if p.BaselineModelName != "ARIMA (Baseline)" || p.AgrobertModelName != "AgroBERT (AI + Sentiment)" {
			t.Fatalf("unexpected model names %q / %q", p.BaselineModelName, p.AgrobertModelName)
		}
	}
}

func TestHeatmapCoversAllStates(t *testing.T) {
	e := NewEngine()
	data := e.Heatmap("potato")

	if len(data) != len(heatmapStates) {
		t.Fatalf("expected %d states, got %d", len(heatmapStates), len(data))
	}
	base := round(1500 * 1.05) // potato in Delhi carries the metro premium
	for state, price := range data {
		if float64(price) < float64(base)*0.84 || float64(price) > float64(base)*1.16 {
			t.Fatalf("state %s price %d outside wobble band around %d", state, price, base)
		}
	}
	if _, ok := data["Karnataka"]; !ok {
		t.Fatalf("expected Karnataka in heatmap")
	}
}
