package server

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	awsclient "github.com/BarsilNzola/AutoPay-AI/internal/client/aws"
	"github.com/BarsilNzola/AutoPay-AI/internal/client/tracking"
	"github.com/BarsilNzola/AutoPay-AI/internal/client/wallet"
	"github.com/BarsilNzola/AutoPay-AI/internal/handlers"
	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/middleware"
	"github.com/BarsilNzola/AutoPay-AI/internal/services"
	"github.com/BarsilNzola/AutoPay-AI/internal/store"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

var (
	automationHandler *handlers.AutomationHandler
	healthHandler     *handlers.HealthHandler

	commonServices *handlers.CommonServices
)

// InitializeHandlers wires configuration, storage, chain clients, and the
// delegation pipeline into the HTTP handlers.
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Automation Storage ---
	// Local development runs on the in-memory store unless a DATABASE_URL is
	// supplied; deployed stages require Postgres.
	repo := buildAutomationStore(ctx, stage, secretsClient)

	// --- Chain Registry ---
	registry := services.NewChainRegistryService(supportedChainsFromEnv())

	// --- Wallet Prober with per-chain RPC clients ---
	prober := services.NewWalletProberService(nil)
	for _, chainID := range registry.SupportedChains() {
		rpcURL := rpcURLForChain(chainID)
		if rpcURL == "" {
			logger.Warn("No RPC URL configured for chain, wallet classification degrades to unknown",
				zap.Int64("chain_id", chainID))
			continue
		}
		client, err := ethclient.DialContext(ctx, rpcURL)
		if err != nil {
			logger.Warn("Failed to connect to chain RPC",
				zap.Int64("chain_id", chainID),
				zap.Error(err))
			continue
		}
		prober.RegisterReader(chainID, client)
	}

	// --- Delegation Pipeline ---
	builder := services.NewDelegationBuilderService()
	signer := services.NewDelegationSignerService(registry, prober)
	submitter := services.NewDelegationSubmitterService()

	// --- Tracking Publisher ---
	tracker := buildTrackingPublisher(ctx)

	setupService := services.NewAutomationSetupService(builder, signer, submitter, repo, tracker)

	// --- Demo Signer ---
	// Optional server-side wallet for confirmations that do not carry a key.
	var demoWallet interfaces.WalletClient
	demoKey, err := secretsClient.GetSecretString(ctx, "DEMO_SIGNER_KEY_ARN", "DEMO_SIGNER_KEY")
	if err == nil && demoKey != "" {
		demoWallet, err = wallet.NewLocalWallet(demoKey)
		if err != nil {
			logger.Fatal("DEMO_SIGNER_KEY is not a valid private key", zap.Error(err))
		}
		logger.Info("Demo signer configured")
	} else {
		logger.Warn("No demo signer configured, confirmations must supply a wallet key")
	}

	commonServices = handlers.NewCommonServices(repo, setupService, registry)
	automationHandler = handlers.NewAutomationHandler(commonServices, demoWallet)
	healthHandler = handlers.NewHealthHandler(registry, apiVersion)
}

// InitializeRoutes registers middleware and the API routes on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/automations", automationHandler.CreateAutomation)
		v1.GET("/automations", automationHandler.ListAutomations)
		v1.GET("/automations/:automation_id", automationHandler.GetAutomation)
		v1.POST("/automations/:automation_id/confirm", automationHandler.ConfirmAutomation)
		v1.PATCH("/automations/:automation_id", automationHandler.UpdateAutomation)
		v1.DELETE("/automations/:automation_id", automationHandler.DeleteAutomation)
	}
}

// buildAutomationStore selects the automation repository for the stage.
func buildAutomationStore(ctx context.Context, stage string, secretsClient *awsclient.SecretsManagerClient) interfaces.AutomationRepository {
	dsn, err := secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil || dsn == "" {
		if stage != helpers.StageLocal {
			logger.Fatal("DATABASE_URL is required for deployed stages", zap.Error(err))
		}
		logger.Info("No DATABASE_URL configured, using in-memory automation store")
		return store.NewMemoryAutomationStore()
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	logger.Info("Using Postgres automation store")
	return store.NewPostgresAutomationStore(pool)
}

// buildTrackingPublisher returns the SQS publisher when a queue is
// configured, otherwise a no-op.
func buildTrackingPublisher(ctx context.Context) interfaces.TrackingPublisher {
	queueURL := os.Getenv("TRACKING_QUEUE_URL")
	if queueURL == "" {
		logger.Info("No tracking queue configured, activation events will be dropped")
		return tracking.NewNoopTrackingPublisher()
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Warn("Failed to load AWS config for tracking publisher, activation events will be dropped", zap.Error(err))
		return tracking.NewNoopTrackingPublisher()
	}

	return tracking.NewSQSTrackingPublisher(sqs.NewFromConfig(cfg), queueURL)
}

// supportedChainsFromEnv parses SUPPORTED_CHAIN_IDS, a comma-separated list
// of chain ids. Falls back to the default registry set.
func supportedChainsFromEnv() []int64 {
	raw := os.Getenv("SUPPORTED_CHAIN_IDS")
	if raw == "" {
		return services.DefaultSupportedChains
	}

	var chains []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		chainID, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			logger.Warn("Ignoring invalid chain id in SUPPORTED_CHAIN_IDS", zap.String("value", part))
			continue
		}
		chains = append(chains, chainID)
	}
	if len(chains) == 0 {
		return services.DefaultSupportedChains
	}
	return chains
}

// rpcURLForChain reads the per-chain RPC endpoint, e.g. RPC_URL_11155111.
func rpcURLForChain(chainID int64) string {
	return os.Getenv("RPC_URL_" + strconv.FormatInt(chainID, 10))
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
