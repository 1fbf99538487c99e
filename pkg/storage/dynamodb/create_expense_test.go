package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/currency"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/finbooks/finbooks/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTables() TableNames {
	return TableNames{
		Wallets:      "wallets",
		Transactions: "wallet_transactions",
		Expenses:     "expenses",
		Invoices:     "invoices",
		Finances:     "finances",
		Projects:     "projects",
	}
}

func conditionalCancellation() *types.TransactionCanceledException {
	return &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
}

func TestCreateExpense(t *testing.T) {
	wallet := &models.Wallet{OwnerID: "user1", Balance: 10000, Currency: models.USD, Version: 1}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Expense put, wallet update, transaction put.
			return len(input.TransactItems) == 3
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		expense := &models.Expense{Amount: 3000, Currency: models.USD, PaidFromWallet: true, WalletOwnerID: "user1"}
		result, err := store.CreateExpense(context.Background(), expense)

		assert.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.False(t, result.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Paid From Wallet", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		expense := &models.Expense{Amount: 3000, Currency: models.USD}
		result, err := store.CreateExpense(context.Background(), expense)

		assert.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		mockClient.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)

		expense := &models.Expense{Amount: 20000, Currency: models.USD, PaidFromWallet: true, WalletOwnerID: "user1"}
		_, err := store.CreateExpense(context.Background(), expense)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		// A shortfall must perform no writes at all.
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Insufficient Funds After Conversion", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		// 9500 EUR is over 10000 when converted into a USD wallet.
		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)

		expense := &models.Expense{Amount: 9500, Currency: models.EUR, PaidFromWallet: true, WalletOwnerID: "user1"}
		_, err := store.CreateExpense(context.Background(), expense)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Currency", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)

		expense := &models.Expense{Amount: 3000, Currency: "XYZ", PaidFromWallet: true, WalletOwnerID: "user1"}
		_, err := store.CreateExpense(context.Background(), expense)

		assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Wallet Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		expense := &models.Expense{Amount: 3000, Currency: models.USD, PaidFromWallet: true, WalletOwnerID: "missing"}
		_, err := store.CreateExpense(context.Background(), expense)

		assert.ErrorIs(t, err, storage.ErrWalletNotFound)
	})

	t.Run("Retries Then Succeeds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Times(2).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(nil, conditionalCancellation())
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		expense := &models.Expense{Amount: 3000, Currency: models.USD, PaidFromWallet: true, WalletOwnerID: "user1"}
		_, err := store.CreateExpense(context.Background(), expense)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict Retries Exhausted", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionalCancellation())

		expense := &models.Expense{Amount: 3000, Currency: models.USD, PaidFromWallet: true, WalletOwnerID: "user1"}
		_, err := store.CreateExpense(context.Background(), expense)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", 3)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		expense := &models.Expense{Amount: 3000, Currency: models.USD, PaidFromWallet: true, WalletOwnerID: "user1"}
		_, err := store.CreateExpense(context.Background(), expense)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute expense transaction")
		// A hard failure is not retried.
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", 1)
	})
}
