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
	"github.com/finbooks/finbooks/pkg/currency"
	"github.com/finbooks/finbooks/pkg/events"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/google/uuid"
)

// CreateExpense persists a new expense. When the expense is paid from a
// wallet, one atomic batch writes the expense document, a debit
// WalletTransaction linked to it, and the wallet balance decrement. The
// sufficiency check runs against a fresh wallet read before any batch is
// built, so a shortfall performs no writes at all.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	now := time.Now().UTC()
	expense.ID = uuid.New().String()
	expense.CreatedAt = now
	if expense.Date.IsZero() {
		expense.Date = now
	}

	expenseAV, err := attributevalue.MarshalMap(expense)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense: %w", err)
	}

	expensePut := types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.Tables.Expenses),
			Item:                expenseAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		},
	}

	// Expenses not paid from a wallet touch no other document.
	if !expense.PaidFromWallet {
		if _, err := s.Client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.Tables.Expenses),
			Item:                expenseAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		}); err != nil {
			return nil, fmt.Errorf("failed to create expense: %w", err)
		}
		return expense, nil
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		// 1. Read the wallet fresh each attempt; the version read here guards
		// the batch below.
		wallet, err := s.GetWallet(ctx, expense.WalletOwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get wallet for expense: %w", err)
		}

		// 2. Convert into the wallet currency and reject a shortfall before
		// building any write.
		converted, err := currency.Convert(s.Rates, expense.Amount, expense.Currency, wallet.Currency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert expense amount: %w", err)
		}
		if converted > wallet.Balance {
			return nil, fmt.Errorf("%w: expense of %d exceeds balance %d", storage.ErrInsufficientFunds, converted, wallet.Balance)
		}

		// 3. Pair the debit with its transaction record.
		delta, err := s.buildWalletDelta(wallet, converted, models.TransactionExpense, expense.ID, "expense", now)
		if err != nil {
			return nil, err
		}

		// 4. Submit everything as one batch.
		input := &dynamodb.TransactWriteItemsInput{
			TransactItems: append([]types.TransactWriteItem{expensePut}, delta.Items...),
		}
		_, err = s.Client.TransactWriteItems(ctx, input)
		if err != nil {
			if isConditionalCancellation(err) {
				// A concurrent writer moved the wallet version; re-read and
				// re-check under the fresh state.
				continue
			}
			return nil, fmt.Errorf("failed to execute expense transaction: %w", err)
		}

		s.publishEvent(ctx, &events.LedgerEvent{
			Kind:           events.KindExpenseCreated,
			WalletOwnerID:  wallet.OwnerID,
			LinkedRecordID: expense.ID,
			Amount:         converted,
			Currency:       wallet.Currency,
			OccurredAt:     now,
		})

		return expense, nil
	}

	return nil, fmt.Errorf("%w: creating expense for wallet %s", storage.ErrConflict, expense.WalletOwnerID)
}

// publishEvent emits a ledger event after a successful commit. Publish
// failures are logged, never surfaced: the ledger write already happened.
func (s *Store) publishEvent(ctx context.Context, event *events.LedgerEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishLedgerEvent(ctx, event); err != nil {
		slog.Error("ledger event publish failed after commit", "kind", event.Kind, "error", err)
	}
}
