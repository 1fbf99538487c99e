package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/finbooks/finbooks/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListFinanceRecords(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	records := []models.FinanceRecord{
		{ID: "rec2", ProjectID: "proj1", Type: models.FinanceIncome, Amount: 5000, Currency: models.USD},
		{ID: "rec1", ProjectID: "proj1", Type: models.FinanceExpense, Amount: 2500, Currency: models.USD},
	}
	items := make([]map[string]types.AttributeValue, len(records))
	for i := range records {
		items[i], _ = attributevalue.MarshalMap(records[i])
	}

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == projectIndex && !*input.ScanIndexForward
	})).Return(&dynamodb.QueryOutput{Items: items}, nil)

	result, err := store.ListFinanceRecords(context.Background(), "proj1")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "rec2", result[0].ID)
}

func TestGetProject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		project := &models.Project{ID: "proj1", Name: "Website", Currency: models.EUR}
		projectAV, _ := attributevalue.MarshalMap(project)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)

		result, err := store.GetProject(context.Background(), "proj1")

		assert.NoError(t, err)
		assert.Equal(t, models.EUR, result.Currency)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetProject(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrProjectNotFound)
	})
}
