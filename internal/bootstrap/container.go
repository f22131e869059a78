package bootstrap

import (
	"context"
	"log"
	"time"

	"freedbot-be/internal/config"
	"freedbot-be/internal/controller"
	"freedbot-be/internal/pkg/logger"
	"freedbot-be/internal/pkg/serverutils"
	"freedbot-be/internal/repository/implementation"
	"freedbot-be/internal/service"
	"freedbot-be/pkg/bot/costing"
	"freedbot-be/pkg/bot/pipeline"
	"freedbot-be/pkg/bot/retrieval"
	"freedbot-be/pkg/embedding"
	"freedbot-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	CatalogController controller.ICatalogController
	ManualController  controller.IManualController

	// Background Services (Exposed for main.go to run)
	ConsumerService        service.IConsumerService
	ChatLogConsumerService service.IChatLogConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 1. Repositories
	manualRepo := implementation.NewManualRepository(db)
	issueRepo := implementation.NewIssueRepository(db)
	presetRepo := implementation.NewStagePresetRepository(db)
	catalogRepo := implementation.NewCatalogRepository(db)
	chatLogRepo := implementation.NewChatLogRepository(db)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.VisionModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// 5. Bot Pipelines
	searcher := retrieval.NewClient(
		embeddingProvider,
		manualRepo,
		issueRepo,
		presetRepo,
		catalogRepo,
		retrieval.Config{
			ManualThreshold: cfg.Retrieval.ManualThreshold,
			ManualLimit:     cfg.Retrieval.ManualLimit,
			IssueThreshold:  cfg.Retrieval.IssueThreshold,
			IssueLimit:      cfg.Retrieval.IssueLimit,
			CatalogLimit:    cfg.Retrieval.CatalogLimit,
		},
		log.Default(),
	)

	rates := costing.Rates{
		InstallMinRate: cfg.Costing.InstallMinRate,
		InstallMaxRate: cfg.Costing.InstallMaxRate,
	}

	diagnosisPipeline := pipeline.NewDiagnosis(searcher, llmProvider, cfg.Ai.Temperature, log.Default())
	modificationPipeline := pipeline.NewModification(searcher, llmProvider, rates, cfg.Ai.Temperature, log.Default())
	visionPipeline := pipeline.NewVision(llmProvider, cfg.Ai.Temperature, log.Default())

	// 6. Services
	ingestPublisher := service.NewPublisherService(cfg.Keys.IngestTopic, pubSub)
	chatPublisher := service.NewPublisherService(cfg.Keys.ChatTopic, pubSub)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.IngestTopic,
		manualRepo,
		issueRepo,
		embeddingProvider,
	)
	chatLogConsumerService := service.NewChatLogConsumerService(
		pubSub,
		cfg.Keys.ChatTopic,
		chatLogRepo,
	)

	chatService := service.NewChatService(
		diagnosisPipeline,
		modificationPipeline,
		visionPipeline,
		chatPublisher,
		sysLogger,
	)
	catalogService := service.NewCatalogService(presetRepo, catalogRepo)
	manualService := service.NewManualService(manualRepo, issueRepo, ingestPublisher, sysLogger)

	// 7. Middleware
	authGuard := serverutils.ApiSecretMiddleware(cfg.App.APISecret)
	var rateLimiter fiber.Handler = serverutils.RateLimitMiddleware(rdb, cfg.App.RateLimitPerMinute, time.Minute)

	// 8. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService, authGuard, rateLimiter),
		CatalogController: controller.NewCatalogController(catalogService),
		ManualController:  controller.NewManualController(manualService, authGuard),

		ConsumerService:        consumerService,
		ChatLogConsumerService: chatLogConsumerService,
	}
}
