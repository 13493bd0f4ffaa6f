package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrobert/agrobert-backend/api/controllers"
	"github.com/agrobert/agrobert-backend/api/middleware"
	"github.com/agrobert/agrobert-backend/internal/chatbot"
	"github.com/agrobert/agrobert-backend/internal/identity"
	"github.com/agrobert/agrobert-backend/internal/simulation"
	"github.com/agrobert/agrobert-backend/pkg/config"
	"github.com/agrobert/agrobert-backend/pkg/db"
	"github.com/agrobert/agrobert-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	identityService identity.Service,
	chatRouter *chatbot.Router,
	engine *simulation.Engine,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(identityService, logg))
		r.Post("/register", controllers.AuthRegister(identityService, logg))
		r.Post("/send-otp", controllers.AuthSendOTP(identityService, logg))
		r.Post("/reset-password", controllers.AuthResetPassword(identityService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Post("/predict", controllers.Predict(engine, logg))
			r.Post("/analyze-sentiment", controllers.AnalyzeSentiment(engine, logg))
			r.Get("/weather", controllers.Weather(engine, logg))
			r.Post("/recommend-crop", controllers.RecommendCrop(engine, logg))
			r.Get("/news", controllers.News(logg))
			r.Post("/chat", controllers.Chat(chatRouter, logg))

			r.Get("/sentiment-distribution", controllers.SentimentDistribution(engine, logg))
			r.Get("/market-comparison", controllers.MarketComparison(engine, logg))
			r.Get("/model-performance", controllers.ModelPerformance(engine, logg))
			r.Get("/heatmap-data", controllers.HeatmapData(engine, logg))
		})
	})

	return r
}
