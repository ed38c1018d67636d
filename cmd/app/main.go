package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pathfinder-backend-V1.0/internal/catalog"
	"pathfinder-backend-V1.0/internal/config"
	"pathfinder-backend-V1.0/internal/controller"
	"pathfinder-backend-V1.0/internal/db"
	"pathfinder-backend-V1.0/internal/engine"
	"pathfinder-backend-V1.0/internal/llm"
	"pathfinder-backend-V1.0/internal/model"
	"pathfinder-backend-V1.0/internal/quiz"
	"pathfinder-backend-V1.0/internal/repository"
	"pathfinder-backend-V1.0/internal/service"
	"pathfinder-backend-V1.0/pkg/middleware"
	"pathfinder-backend-V1.0/utilities"
)

func main() {
	printStartUpBanner()

	// Secrets come from the environment; .env is optional in production.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utilities.SetupLogging("logs")

	// Initialize DB using the loaded config.
	db.InitDBFromConfig(cfg)
	// Run migrations.
	if err := db.GetDB().AutoMigrate(&model.User{}, &model.RecommendationRun{}, &model.StoredResult{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Load the career catalog and build the scoring engine.
	careers, err := catalog.Load(cfg.Engine.CareersFile)
	if err != nil {
		log.Fatalf("failed to load career catalog: %v", err)
	}
	if len(careers) == 0 {
		utilities.Warn("Career catalog is empty, recommendations will return no results")
	}

	var embedder engine.Embedder = engine.NewLexicalEmbedder()
	if cfg.ThirdParty.EmbedderURL != "" {
		embedder = llm.NewRemoteEmbedder(cfg.ThirdParty.EmbedderURL, cfg.ThirdParty.EmbedderTimeout)
		utilities.Info("Using remote embedder at %s", cfg.ThirdParty.EmbedderURL)
	}

	weights := engine.Weights{
		Similarity: cfg.Engine.SimilarityWeight,
		Aptitude:   cfg.Engine.AptitudeWeight,
		Interest:   cfg.Engine.InterestWeight,
	}
	eng := engine.New(careers, embedder, weights, cfg.Engine.DefaultTopK)

	// Quiz assembly: generated questions when Ollama is reachable, the
	// built-in bank otherwise.
	builtin := quiz.NewBuiltinSource()
	var source quiz.QuestionSource = builtin
	if cfg.ThirdParty.OllamaURL != "" {
		ollama := llm.NewOllamaClient(cfg.ThirdParty.OllamaURL)
		source = quiz.NewGenerativeSource(ollama, builtin, cfg.Quiz.QuestionsPerSection)
	}
	selector := quiz.NewSelector(source, quiz.NewAttemptStore(),
		cfg.Quiz.QuestionsPerSection, cfg.Quiz.ExclusionHours, cfg.Quiz.RetentionDays)

	// Create repositories.
	userRepo := repository.NewUserRepository()
	recoRepo := repository.NewRecommendationRepository()

	// Create services.
	authService := service.NewAuthService(userRepo)
	recoService := service.NewRecommendationService(eng, recoRepo)
	reportService := service.NewReportService(recoRepo)
	quizService := service.NewQuizService(selector)

	service.InitReportEventListeners(recoRepo)

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	r.Use(middleware.RateLimitMiddleware(cfg.Context.RateLimit, cfg.Context.RateBurst))
	r.Use(utilities.AuthMiddleware())

	controller.RegisterRoutes(r, authService, recoService, reportService, quizService, eng)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("PATHFINDER", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("PATHFINDER API (v%s)\n\n", "1.0.0-Wayfarer")
}
