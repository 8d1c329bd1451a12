package main

import (
	"context"
	"log"
	"net/http"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/audit"
	"github.com/imrishuroy/go-ecom-admin/internal/aws"
	"github.com/imrishuroy/go-ecom-admin/internal/cache"
	"github.com/imrishuroy/go-ecom-admin/internal/config"
	"github.com/imrishuroy/go-ecom-admin/internal/discount"
	"github.com/imrishuroy/go-ecom-admin/internal/events"
	"github.com/imrishuroy/go-ecom-admin/internal/handlers"
	"github.com/imrishuroy/go-ecom-admin/internal/idempotency"
	"github.com/imrishuroy/go-ecom-admin/internal/logging"
	"github.com/imrishuroy/go-ecom-admin/internal/metrics"
	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/session"
)

func setupRouter(logger *zap.Logger, sessions *session.Manager, cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(logger), metrics.Middleware(), sessions.Middleware())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	handlers.RegisterRoutes(r, cfg)

	return r
}

// newHandlerConfig wires the AWS-backed parts. Each is optional: without
// its table or queue the feature is off.
func newHandlerConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger, sessions *session.Manager) (handlers.HandlerConfig, error) {
	client := remote.New(cfg.APIBaseURL, cfg.RemoteTimeout, cache.NewTagCache())

	var (
		publisher events.Publisher = events.Nop{}
		recorder  metrics.Recorder = metrics.NewCloudWatchRecorder(nil, cfg.MetricsNamespace)
		idem      *idempotency.Store
		auditLog  *audit.Store
	)

	needAWS := cfg.IdempotencyTable != "" || cfg.AuditTable != "" || cfg.EventsQueueURL != "" || !cfg.RunLocal
	if needAWS {
		clients, err := aws.NewAWSClients(ctx, cfg.AWSRegion)
		if err != nil {
			return handlers.HandlerConfig{}, err
		}
		if !cfg.RunLocal {
			recorder = metrics.NewCloudWatchRecorder(clients.CloudWatch, cfg.MetricsNamespace)
		}
		if cfg.EventsQueueURL != "" {
			publisher = events.NewQueuePublisher(aws.NewPublisher(clients.SQS, cfg.EventsQueueURL))
		}
		if cfg.IdempotencyTable != "" {
			idem = idempotency.NewStore(clients.DynamoDB, cfg.IdempotencyTable, idempotency.DefaultTTL)
		}
		if cfg.AuditTable != "" {
			auditLog = audit.NewStore(clients.DynamoDB, cfg.AuditTable)
		}
	}

	discountOpts := []discount.Option{}
	if cfg.DateOrderCheck {
		discountOpts = append(discountOpts, discount.WithDateOrderCheck())
	}

	svc := actions.NewService(client,
		actions.WithPublisher(publisher),
		actions.WithRecorder(recorder),
		actions.WithDiscountValidator(discount.New(discountOpts...)),
		actions.WithLogger(logger),
	)

	return handlers.HandlerConfig{
		Client:      client,
		Actions:     svc,
		Sessions:    sessions,
		Idempotency: idem,
		Audit:       auditLog,
		Logger:      logger,
	}, nil
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := logging.Init(logging.Options{Mode: cfg.LogMode, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sessions := session.NewManager(session.Options{
		Name:   cfg.SessionCookieName,
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})

	hcfg, err := newHandlerConfig(context.Background(), cfg, logger, sessions)
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	r := setupRouter(logger, sessions, hcfg)

	// if RUN_LOCAL is true, run a plain HTTP server for development.
	if cfg.RunLocal {
		logger.Info("running local server", zap.String("addr", cfg.HTTPAddr))
		if err := r.Run(cfg.HTTPAddr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req lambdaevents.APIGatewayProxyRequest) (lambdaevents.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
