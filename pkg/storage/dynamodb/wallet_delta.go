package dynamodb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/google/uuid"
)

// walletDelta is one signed balance change, expressed as the pair of write
// items a caller must include in its own atomic batch: an increment of the
// wallet balance and a Put of the immutable WalletTransaction describing it.
// The delta never submits itself, so a wallet balance can only change
// together with its audit record.
type walletDelta struct {
	Transaction *models.WalletTransaction
	Items       []types.TransactWriteItem
}

// buildWalletDelta constructs the delta for the given wallet. amount is the
// positive magnitude; txType carries the sign. The balance update is an
// increment, never an absolute overwrite, and is guarded by the wallet
// version read by the caller. Debits additionally guard balance >= amount at
// the store level; callers are still expected to pre-check sufficiency so a
// plain shortfall is rejected before any batch is built.
func (s *Store) buildWalletDelta(wallet *models.Wallet, amount int64, txType models.WalletTransactionType, linkedRecordID, note string, now time.Time) (*walletDelta, error) {
	tx := &models.WalletTransaction{
		ID:             uuid.New().String(),
		WalletOwnerID:  wallet.OwnerID,
		Amount:         amount,
		Type:           txType,
		LinkedRecordID: linkedRecordID,
		Note:           note,
		Timestamp:      now,
	}

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet transaction: %w", err)
	}

	amountAV, err := attributevalue.Marshal(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}

	update := &types.Update{
		TableName: aws.String(s.Tables.Wallets),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: wallet.OwnerID},
		},
		UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc"),
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":  amountAV,
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
			":inc":     &types.AttributeValueMemberN{Value: "1"},
		},
	}
	if txType == models.TransactionExpense {
		update.UpdateExpression = aws.String("SET balance = balance - :amount, version = version + :inc")
		update.ConditionExpression = aws.String("balance >= :amount AND version = :version")
	}

	return &walletDelta{
		Transaction: tx,
		Items: []types.TransactWriteItem{
			{Update: update},
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Transactions),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}, nil
}
