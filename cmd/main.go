package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ptmanh/examcore/config"
	"github.com/ptmanh/examcore/database"
	_ "github.com/ptmanh/examcore/docs" // Swagger docs - auto-generated
	"github.com/ptmanh/examcore/internal/controller"
	"github.com/ptmanh/examcore/internal/lock"
	"github.com/ptmanh/examcore/internal/logger"
	"github.com/ptmanh/examcore/internal/model"
	"github.com/ptmanh/examcore/internal/repository"
	"github.com/ptmanh/examcore/internal/service"
)

// @title Exam Attempt & Scoring API
// @version 1.0
// @description Exam attempt lifecycle with automatic objective and AI similarity scoring, result generation and ranking.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			NewGinEngine,
			lock.NewKeyedMutex,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewResultRepository,
			repository.NewCacheRepository,
		),

		// Services Layer
		fx.Provide(
			NewEmbeddingProvider,
			func(provider service.EmbeddingProvider, cfg *config.Config) service.SimilarityService {
				return service.NewSimilarityService(provider, time.Duration(cfg.Scoring.EmbedTimeoutSeconds)*time.Second)
			},
			func(
				attemptRepo repository.AttemptRepository,
				answerRepo repository.AnswerRepository,
				examRepo repository.ExamRepository,
				similarity service.SimilarityService,
				cfg *config.Config,
			) service.ScoringService {
				return service.NewScoringService(attemptRepo, answerRepo, examRepo, similarity, service.ScoringConfig{
					CountUnanswered: cfg.Scoring.CountUnanswered,
				})
			},
			func(
				attemptRepo repository.AttemptRepository,
				examRepo repository.ExamRepository,
				answerRepo repository.AnswerRepository,
				scoringSvc service.ScoringService,
				cache repository.CacheRepository,
				locks *lock.KeyedMutex,
				cfg *config.Config,
			) service.AttemptService {
				return service.NewAttemptService(attemptRepo, examRepo, answerRepo, scoringSvc, cache, locks, service.AttemptConfig{
					MaxCheatingWarnings: cfg.Scoring.MaxCheatingWarnings,
				})
			},
			service.NewAnswerService,
			func(
				resultRepo repository.ResultRepository,
				attemptRepo repository.AttemptRepository,
				answerRepo repository.AnswerRepository,
				scoringSvc service.ScoringService,
				cfg *config.Config,
			) service.ResultService {
				return service.NewResultService(resultRepo, attemptRepo, answerRepo, scoringSvc, service.GradingPolicy{
					PassPercentage: cfg.Scoring.PassPercentage,
				})
			},
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAttemptController,
			controller.NewAnswerController,
			controller.NewScoringController,
			controller.NewResultController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewEmbeddingProvider selects the embedding backend from config.
func NewEmbeddingProvider(cfg *config.Config) (service.EmbeddingProvider, error) {
	switch cfg.Scoring.Provider {
	case "gemini":
		return service.NewGeminiEmbeddingProvider(cfg.Scoring.GeminiAPIKey, cfg.Scoring.GeminiModel)
	case "openai":
		return service.NewOpenAIEmbeddingProvider(cfg.Scoring.OpenAIAPIKey, cfg.Scoring.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown scoring provider %q", cfg.Scoring.Provider)
	}
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	attemptCtrl *controller.AttemptController,
	answerCtrl *controller.AnswerController,
	scoringCtrl *controller.ScoringController,
	resultCtrl *controller.ResultController,
) {
	api := router.Group("/api/v1")
	{
		attempts := api.Group("/attempts")
		attempts.POST("", attemptCtrl.CreateAttempt)
		attempts.GET("/:id", attemptCtrl.GetAttempt)
		attempts.POST("/:id/pause", attemptCtrl.PauseAttempt)
		attempts.POST("/:id/resume", attemptCtrl.ResumeAttempt)
		attempts.POST("/:id/submit", attemptCtrl.SubmitAttempt)
		attempts.GET("/:id/time-remaining", attemptCtrl.GetTimeRemaining)
		attempts.POST("/:id/violations", attemptCtrl.AddViolation)
		attempts.GET("/:id/cheating-warnings", attemptCtrl.GetCheatingWarnings)
		attempts.DELETE("/:id/cheating-warnings", attemptCtrl.ResetCheatingWarnings)
		attempts.PUT("/:id/answers", answerCtrl.SaveAnswer)
		attempts.GET("/:id/answers", answerCtrl.ListAnswers)
		attempts.GET("/:id/scoring-progress", scoringCtrl.GetScoringProgress)
		attempts.POST("/:id/result", resultCtrl.GenerateResult)
		attempts.GET("/:id/result", resultCtrl.GetAttemptResult)

		api.POST("/answers/:id/regrade", scoringCtrl.RegradeAnswer)
		api.GET("/exams/:id/results", resultCtrl.GetExamResults)
		api.GET("/students/:id/attempts", attemptCtrl.ListStudentAttempts)
		api.GET("/students/:id/results", resultCtrl.GetStudentResults)
		api.POST("/results/:id/publish", resultCtrl.PublishResult)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam attempt API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Exam{},
		&model.Section{},
		&model.Question{},
		&model.ExamAttempt{},
		&model.Answer{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
