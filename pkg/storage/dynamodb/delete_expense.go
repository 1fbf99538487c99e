package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/events"
	"github.com/finbooks/finbooks/pkg/storage"
)

// DeleteExpense removes an expense. For a wallet-paid expense the compensating
// reversal deletes the linked WalletTransaction and credits the wallet by the
// transaction's recorded amount — not a fresh conversion, so rate drift
// between create and delete cannot break the round-trip. All three writes go
// in one batch.
func (s *Store) DeleteExpense(ctx context.Context, expenseID string) error {
	expense, err := s.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}

	if !expense.PaidFromWallet || expense.WalletOwnerID == "" {
		return s.deleteExpenseAlone(ctx, expenseID)
	}

	linkedTx, err := s.getTransactionByLinkedRecord(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("failed to look up linked transaction: %w", err)
	}
	if linkedTx == nil {
		// Degraded path: the expense claims a wallet payment but its refund
		// link is gone (already consumed). Delete the expense alone and leave
		// the balance untouched.
		slog.Warn("wallet-paid expense has no linked transaction, deleting without refund",
			"expense_id", expenseID, "wallet_owner_id", expense.WalletOwnerID)
		return s.deleteExpenseAlone(ctx, expenseID)
	}

	refundAV, err := attributevalue.Marshal(linkedTx.Amount)
	if err != nil {
		return fmt.Errorf("failed to marshal refund amount: %w", err)
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		wallet, err := s.GetWallet(ctx, expense.WalletOwnerID)
		if err != nil {
			return fmt.Errorf("failed to get wallet for expense deletion: %w", err)
		}

		input := &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					// Operation 1: Delete the expense.
					Delete: &types.Delete{
						TableName:           aws.String(s.Tables.Expenses),
						Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: expenseID}},
						ConditionExpression: aws.String("attribute_exists(id)"),
					},
				},
				{
					// Operation 2: Delete the paired transaction.
					Delete: &types.Delete{
						TableName:           aws.String(s.Tables.Transactions),
						Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: linkedTx.ID}},
						ConditionExpression: aws.String("attribute_exists(id)"),
					},
				},
				{
					// Operation 3: Restore the balance by the recorded amount.
					Update: &types.Update{
						TableName:           aws.String(s.Tables.Wallets),
						Key:                 map[string]types.AttributeValue{"owner_id": &types.AttributeValueMemberS{Value: wallet.OwnerID}},
						UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc"),
						ConditionExpression: aws.String("version = :version"),
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":amount":  refundAV,
							":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
							":inc":     &types.AttributeValueMemberN{Value: "1"},
						},
					},
				},
			},
		}

		_, err = s.Client.TransactWriteItems(ctx, input)
		if err != nil {
			if isConditionalCancellation(err) {
				continue
			}
			return fmt.Errorf("failed to execute expense deletion transaction: %w", err)
		}

		s.publishEvent(ctx, &events.LedgerEvent{
			Kind:           events.KindExpenseDeleted,
			WalletOwnerID:  wallet.OwnerID,
			LinkedRecordID: expenseID,
			Amount:         linkedTx.Amount,
			Currency:       wallet.Currency,
			OccurredAt:     time.Now().UTC(),
		})

		return nil
	}

	return fmt.Errorf("%w: deleting expense %s", storage.ErrConflict, expenseID)
}

// deleteExpenseAlone removes only the expense document.
func (s *Store) deleteExpenseAlone(ctx context.Context, expenseID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.Tables.Expenses),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: expenseID}},
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
