package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/finbooks/finbooks/pkg/currency"
	"github.com/finbooks/finbooks/pkg/events"
	"github.com/finbooks/finbooks/pkg/handlers"
	"github.com/finbooks/finbooks/pkg/middleware"
	dydbstore "github.com/finbooks/finbooks/pkg/storage/dynamodb"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(cfg)
	tables := dydbstore.TableNames{
		Wallets:      os.Getenv("DYNAMODB_WALLETS_TABLE_NAME"),
		Transactions: os.Getenv("DYNAMODB_WALLET_TRANSACTIONS_TABLE_NAME"),
		Expenses:     os.Getenv("DYNAMODB_EXPENSES_TABLE_NAME"),
		Invoices:     os.Getenv("DYNAMODB_INVOICES_TABLE_NAME"),
		Finances:     os.Getenv("DYNAMODB_FINANCES_TABLE_NAME"),
		Projects:     os.Getenv("DYNAMODB_PROJECTS_TABLE_NAME"),
	}
	if tables.Wallets == "" || tables.Transactions == "" || tables.Expenses == "" ||
		tables.Invoices == "" || tables.Finances == "" || tables.Projects == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS client for post-commit ledger events. Optional so the service can
	// run locally without a queue.
	var publisher events.Publisher
	if queueURL := os.Getenv("SQS_LEDGER_EVENTS_QUEUE_URL"); queueURL != "" {
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
	} else {
		log.Println("SQS_LEDGER_EVENTS_QUEUE_URL not set, ledger events disabled")
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, publisher, currency.DefaultRates(), tables)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := handlers.NewRouter(store, chimiddleware.RequestID, middleware.NewStructuredLogger(logger))

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
