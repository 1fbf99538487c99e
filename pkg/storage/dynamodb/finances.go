package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
)

const projectIndex = "project_id-created_at-index"

// ListFinanceRecords retrieves a project's finance ledger, most recent first.
func (s *Store) ListFinanceRecords(ctx context.Context, projectID string) ([]models.FinanceRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Finances),
		IndexName:              aws.String(projectIndex),
		KeyConditionExpression: aws.String("project_id = :projectID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":projectID": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query finance records: %w", err)
	}

	var records []models.FinanceRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal finance records: %w", err)
	}

	return records, nil
}

// GetProject retrieves a project from DynamoDB by its ID. Projects are
// written by the catalog CRUD collaborator; the ledger only reads them.
func (s *Store) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Projects),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get project from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrProjectNotFound, projectID)
	}

	var project models.Project
	if err := attributevalue.UnmarshalMap(result.Item, &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}

	return &project, nil
}
