package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
)

// GetExpense retrieves an expense from DynamoDB by its ID.
func (s *Store) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": expenseID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Expenses),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get expense from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrExpenseNotFound, expenseID)
	}

	var expense models.Expense
	if err := attributevalue.UnmarshalMap(result.Item, &expense); err != nil {
		return nil, fmt.Errorf("failed to unmarshal expense: %w", err)
	}

	return &expense, nil
}
