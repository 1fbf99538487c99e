package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/finbooks/finbooks/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetInvoice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		inv := &models.Invoice{ID: "inv1", ProjectID: "proj1", Status: models.InvoiceUnpaid, Version: 1}
		invAV, _ := attributevalue.MarshalMap(inv)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: invAV}, nil)

		result, err := store.GetInvoice(context.Background(), "inv1")

		assert.NoError(t, err)
		assert.Equal(t, "inv1", result.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetInvoice(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrInvoiceNotFound)
	})
}

func TestCreateInvoice(t *testing.T) {
	t.Run("Derives Status From Payments", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		inv := &models.Invoice{
			ProjectID: "proj1",
			LineItems: []models.LineItem{{Quantity: 2, UnitPrice: 5000, Currency: models.USD}},
			Payments:  []models.Payment{{ID: "p1", Amount: 4000}},
		}
		result, err := store.CreateInvoice(context.Background(), inv)

		assert.NoError(t, err)
		assert.Equal(t, models.InvoicePartial, result.Status)
		assert.Equal(t, int64(1), result.Version)
		assert.NotEmpty(t, result.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Keeps Administrative Status", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		inv := &models.Invoice{ProjectID: "proj1", Status: models.InvoiceDraft}
		result, err := store.CreateInvoice(context.Background(), inv)

		assert.NoError(t, err)
		assert.Equal(t, models.InvoiceDraft, result.Status)
		mockClient.AssertExpectations(t)
	})
}
