// @title         SwiftStream Logistics API
// @version       1.0
// @description   Marketing content, AI freight quotes, shipment tracking and the SwiftBot assistant for the SwiftStream Logistics site.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Console token. Accepted formats: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	swagger "github.com/gofiber/swagger"
	goredis "github.com/redis/go-redis/v9"

	httpapi "github.com/swiftstream/site/api/http"
	"github.com/swiftstream/site/api/http/handlers"
	_ "github.com/swiftstream/site/docs"
	"github.com/swiftstream/site/pkg/auth"
	"github.com/swiftstream/site/pkg/catalog"
	"github.com/swiftstream/site/pkg/chat"
	"github.com/swiftstream/site/pkg/config"
	"github.com/swiftstream/site/pkg/health"
	"github.com/swiftstream/site/pkg/health/checkers"
	"github.com/swiftstream/site/pkg/llm/openrouter"
	"github.com/swiftstream/site/pkg/quote"
	pgrepo "github.com/swiftstream/site/pkg/repository/postgres"
	redisrepo "github.com/swiftstream/site/pkg/repository/redis"
	"github.com/swiftstream/site/pkg/security/jwt"
	"github.com/swiftstream/site/pkg/storage/postgres"
	redisstore "github.com/swiftstream/site/pkg/storage/redis"
	"github.com/swiftstream/site/pkg/tracking"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	llmClient := openrouter.New(
		cfg.LLMAPIKey,
		cfg.LLMBaseURL,
		cfg.LLMModel,
		cfg.LLMAppTitle,
		cfg.LLMReferer,
	).WithTimeout(time.Duration(cfg.LLMTimeoutSeconds) * time.Second)
	if cfg.LLMAPIKey == "" {
		log.Warn("LLM_API_KEY is not set: quotes and chat will answer with fallbacks")
	}

	readinessChecks := []health.Checker{checkers.NewLLMConfigChecker(cfg.LLMAPIKey)}

	// Tracking: Postgres store when configured, the static demo record otherwise.
	var (
		finder tracking.Finder = tracking.NewDemoFinder()
		hint                   = tracking.DemoHint
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		version, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		log.Infof("postgres schema at version %d", version)
		finder = pgrepo.NewShipmentRepository(pool)
		hint = ""
		readinessChecks = append(readinessChecks, checkers.NewPostgresChecker(pool))
	}
	trackingUC := tracking.NewService(finder)

	// Chat history: Redis when configured, process memory otherwise.
	var history chat.HistoryStore = chat.NewMemoryHistory(cfg.ChatHistoryLimit)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer func(rdb *goredis.Client) { _ = rdb.Close() }(rdb)
		history = redisrepo.NewHistoryRepository(rdb, cfg.ChatHistoryLimit)
		readinessChecks = append(readinessChecks, checkers.NewRedisChecker(rdb))
	}
	assistant := chat.NewAssistant(chat.NewModelStarter(llmClient, history, cfg.ChatHistoryLimit))

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	h := httpapi.Handlers{
		Health:   handlers.NewHealthHandler(health.NewService(readinessChecks...)),
		Content:  handlers.NewContentHandler(cat),
		Quote:    handlers.NewQuoteHandler(quote.NewService(llmClient, llmClient.Model)),
		Tracking: handlers.NewTrackingHandler(trackingUC, hint),
		Chat:     handlers.NewChatHandler(assistant),
	}

	if cfg.ConsoleEnabled() && trackingUC.Writable() {
		jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
		operators := auth.NewStaticOperators(cfg.OperatorEmail, cfg.OperatorPasswordHash)
		h.Auth = handlers.NewAuthHandler(auth.NewAuthService(operators, jwtGen))
		h.Shipments = handlers.NewShipmentsHandler(trackingUC)
		h.AuthMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
		log.Infof("operator console enabled for %s", cfg.OperatorEmail)
	} else if cfg.OperatorEmail != "" && !cfg.JWTSecretSet() {
		log.Warn("operator console disabled: JWT_SECRET must be set to a deployment-specific value")
	}

	app := httpapi.NewApp()
	httpapi.Register(app, h)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	log.Infof("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
