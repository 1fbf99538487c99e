package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finbooks/finbooks/pkg/currency"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/finbooks/finbooks/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWithdrawFromWallet(t *testing.T) {
	project := &models.Project{ID: "proj1", Currency: models.USD}
	wallet := &models.Wallet{OwnerID: "user1", Balance: 10000, Currency: models.USD, Version: 1}

	req := &storage.TransferRequest{
		WalletOwnerID: "user1",
		ProjectID:     "proj1",
		Amount:        2500,
		Currency:      models.USD,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		projectAV, _ := attributevalue.MarshalMap(project)
		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 3 {
				return false
			}
			update := input.TransactItems[1].Update
			if update == nil {
				return false
			}
			// Debits guard sufficiency at the store level too.
			return *update.ConditionExpression == "balance >= :amount AND version = :version"
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		record, tx, err := store.WithdrawFromWallet(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, models.FinanceIncome, record.Type)
		assert.Equal(t, int64(2500), record.Amount)
		assert.Equal(t, "Wallet Withdrawal", record.Category)
		assert.Equal(t, models.TransactionExpense, tx.Type)
		assert.Equal(t, int64(2500), tx.Amount)
		assert.Equal(t, int64(-2500), tx.SignedAmount())
		assert.Equal(t, record.LinkedRecordID, tx.LinkedRecordID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		projectAV, _ := attributevalue.MarshalMap(project)
		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)

		over := &storage.TransferRequest{WalletOwnerID: "user1", ProjectID: "proj1", Amount: 10001, Currency: models.USD}
		_, _, err := store.WithdrawFromWallet(context.Background(), over)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		// A shortfall must perform no writes at all.
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Sufficiency Checked In Wallet Currency", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		// 95.00 EUR against a 100.00 USD balance converts to 103.26 USD.
		projectAV, _ := attributevalue.MarshalMap(project)
		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)

		eurReq := &storage.TransferRequest{WalletOwnerID: "user1", ProjectID: "proj1", Amount: 9500, Currency: models.EUR}
		_, _, err := store.WithdrawFromWallet(context.Background(), eurReq)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
	})

	t.Run("Wallet Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		projectAV, _ := attributevalue.MarshalMap(project)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{}, nil)

		_, _, err := store.WithdrawFromWallet(context.Background(), req)

		assert.ErrorIs(t, err, storage.ErrWalletNotFound)
	})

	t.Run("Lost Race Surfaces Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Rates: currency.DefaultRates(), Tables: testTables()}

		projectAV, _ := attributevalue.MarshalMap(project)
		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
			return *input.TableName == "projects"
		})).Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
			return *input.TableName == "wallets"
		})).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionalCancellation())

		_, _, err := store.WithdrawFromWallet(context.Background(), req)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", 3)
	})
}
