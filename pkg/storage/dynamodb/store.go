// Package dynamodb implements the ledger store on AWS DynamoDB. Every
// multi-record money movement is submitted as one TransactWriteItems call so
// the store's all-or-nothing guarantee covers it, and every wallet or invoice
// mutation is guarded by a version condition so concurrent read-modify-write
// sequences cannot silently overwrite each other.
package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/currency"
	"github.com/finbooks/finbooks/pkg/events"
	"github.com/finbooks/finbooks/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses. Mocked by
// mockery for tests.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// TableNames holds the DynamoDB table for each document type.
type TableNames struct {
	Wallets      string
	Transactions string
	Expenses     string
	Invoices     string
	Finances     string
	Projects     string
}

// Store implements the storage interfaces using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Events events.Publisher
	Rates  currency.RateTable
	Tables TableNames
}

// New creates a new Store. publisher may be nil, in which case no ledger
// events are emitted.
func New(client DynamoDBAPI, publisher events.Publisher, rates currency.RateTable, tables TableNames) *Store {
	return &Store{
		Client: client,
		Events: publisher,
		Rates:  rates,
		Tables: tables,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// maxConflictRetries bounds the optimistic-retry loop around version-guarded
// batches. Contention on a single wallet or invoice is human-scale, so a
// small bound with no backoff is enough.
const maxConflictRetries = 3

// isConditionalCancellation reports whether the TransactWriteItems error is a
// TransactionCanceledException with at least one failed conditional check,
// which under our guards means a stale version or a lost funds race.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
