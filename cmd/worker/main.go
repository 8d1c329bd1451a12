package main

import (
	"context"
	"log"
	"os"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/audit"
	"github.com/imrishuroy/go-ecom-admin/internal/aws"
	"github.com/imrishuroy/go-ecom-admin/internal/config"
	"github.com/imrishuroy/go-ecom-admin/internal/logging"
)

func main() {
	cfg, err := config.LoadWorker(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := logging.Init(logging.Options{Mode: cfg.LogMode, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	clients, err := aws.NewAWSClients(context.Background(), cfg.AWSRegion)
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}
	p := NewProcessor(audit.NewStore(clients.DynamoDB, cfg.AuditTable), logger)

	// RUN_LOCAL=true replays one event from LOCAL_SQS_BODY.
	if cfg.RunLocal {
		body := os.Getenv("LOCAL_SQS_BODY")
		if body == "" {
			body = `{"eventId":"local-event-1","tag":"Product","action":"create","resourceId":"local-product-1","occurredAt":"2025-01-01T00:00:00Z"}`
		}
		event := lambdaevents.SQSEvent{Records: []lambdaevents.SQSMessage{{MessageId: "local-1", Body: body}}}
		if err := p.Handle(context.Background(), event); err != nil {
			logger.Fatal("local handler error", zap.Error(err))
		}
		return
	}

	lambda.Start(p.Handle)
}
