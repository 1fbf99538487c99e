package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/models"
)

const (
	walletOwnerIndex  = "wallet_owner_id-timestamp-index"
	linkedRecordIndex = "linked_record_id-index"
)

// ListWalletTransactions retrieves all transactions for a wallet, most recent
// first.
func (s *Store) ListWalletTransactions(ctx context.Context, ownerID string) ([]models.WalletTransaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Transactions),
		IndexName:              aws.String(walletOwnerIndex),
		KeyConditionExpression: aws.String("wallet_owner_id = :ownerID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ownerID": &types.AttributeValueMemberS{Value: ownerID},
		},
		ScanIndexForward: aws.Bool(false), // Sort by timestamp in descending order
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet transactions: %w", err)
	}

	var txs []models.WalletTransaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &txs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet transactions: %w", err)
	}

	return txs, nil
}

// getTransactionByLinkedRecord looks up the wallet transaction whose
// linked_record_id points at the given record. Returns nil, nil when no such
// transaction exists; an expense delete treats that as the degraded
// link-already-consumed path rather than an error.
func (s *Store) getTransactionByLinkedRecord(ctx context.Context, linkedRecordID string) (*models.WalletTransaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Transactions),
		IndexName:              aws.String(linkedRecordIndex),
		KeyConditionExpression: aws.String("linked_record_id = :linkedID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":linkedID": &types.AttributeValueMemberS{Value: linkedRecordID},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction by linked record: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var tx models.WalletTransaction
	if err := attributevalue.UnmarshalMap(result.Items[0], &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet transaction: %w", err)
	}

	return &tx, nil
}
