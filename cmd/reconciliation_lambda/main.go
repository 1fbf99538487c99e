package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/finbooks/finbooks/pkg/currency"
	"github.com/finbooks/finbooks/pkg/events"
	"github.com/finbooks/finbooks/pkg/reconcile"
	dydbstore "github.com/finbooks/finbooks/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var reconciler *reconcile.Reconciler

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	sqsQueueURL := os.Getenv("SQS_LEDGER_EVENTS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_LEDGER_EVENTS_QUEUE_URL environment variable not set")
	}
	publisher := events.NewSQSPublisher(sqs.NewFromConfig(cfg), sqsQueueURL)

	tables := dydbstore.TableNames{
		Wallets:      os.Getenv("DYNAMODB_WALLETS_TABLE_NAME"),
		Transactions: os.Getenv("DYNAMODB_WALLET_TRANSACTIONS_TABLE_NAME"),
		Expenses:     os.Getenv("DYNAMODB_EXPENSES_TABLE_NAME"),
		Invoices:     os.Getenv("DYNAMODB_INVOICES_TABLE_NAME"),
		Finances:     os.Getenv("DYNAMODB_FINANCES_TABLE_NAME"),
		Projects:     os.Getenv("DYNAMODB_PROJECTS_TABLE_NAME"),
	}

	store := dydbstore.New(dbClient, publisher, currency.DefaultRates(), tables)
	reconciler = &reconcile.Reconciler{Wallets: store, Ledger: store, Events: publisher}
}

// HandleRequest is triggered by an EventBridge Schedule. It replays every
// wallet's transaction history against its stored balance and reports the
// wallets that drifted.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting wallet balance reconciliation...")

	result, err := reconciler.Run(ctx)
	if err != nil {
		log.Printf("ERROR: reconciliation sweep failed: %v", err)
		return err
	}

	log.Printf("Reconciliation finished. Checked %d wallets, %d drifted.", result.Checked, result.Drifted)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
