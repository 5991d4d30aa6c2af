package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"itinera/cmd/fx/analysisfx"
	"itinera/cmd/fx/catalogfx"
	"itinera/cmd/fx/controllersfx"
	"itinera/cmd/fx/itineraryfx"
	"itinera/cmd/fx/preferencesfx"
	"itinera/internal/api/controllers"
	"itinera/pkg/middleware"
	"itinera/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(ProvideLogger),
		fx.Provide(ProvideRand),
		catalogfx.Module,
		preferencesfx.Module,
		itineraryfx.Module,
		analysisfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func ProvideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

// ProvideRand honors RANDOM_SEED so itinerary generation can be made
// reproducible; otherwise each process gets a fresh seed.
func ProvideRand() utils.RandSource {
	if seedStr := os.Getenv("RANDOM_SEED"); seedStr != "" {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			return utils.NewRand(seed)
		}
	}
	return utils.NewRand(time.Now().UnixNano())
}

func ProvideRouter(
	recommendationsController *controllers.RecommendationsController,
	analysisController *controllers.AnalysisController,
	preferencesController *controllers.PreferencesController,
	statusController *controllers.StatusController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, recommendationsController, analysisController, preferencesController, statusController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendationsController *controllers.RecommendationsController,
	analysisController *controllers.AnalysisController,
	preferencesController *controllers.PreferencesController,
	statusController *controllers.StatusController) {

	r.POST("/recommendations", recommendationsController.GetRecommendations)
	r.POST("/analyze", analysisController.AnalyzeText)
	r.POST("/preferences", preferencesController.UpdatePreferences)
	r.GET("/models/status", statusController.ModelStatus)
	r.GET("/health", statusController.Health)

	// Aliases kept for the web client's older route names.
	api := r.Group("/api")
	api.POST("/generate-itinerary", recommendationsController.GenerateItinerary)
	api.POST("/analyze-text", analysisController.AnalyzeText)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
