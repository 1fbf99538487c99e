package dynamodb

import (
	"context"
	"fmt"
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

// WithdrawFromWallet is the mirror image of FundWallet: money leaves the
// wallet and reappears as income in the destination project. The amount is
// converted into the wallet currency first for the sufficiency check — a
// shortfall is rejected before any batch is built — and that same conversion
// result drives both the expense WalletTransaction and the balance decrement.
func (s *Store) WithdrawFromWallet(ctx context.Context, req *storage.TransferRequest) (*models.FinanceRecord, *models.WalletTransaction, error) {
	now := time.Now().UTC()

	project, err := s.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	amountInProject, err := currency.Convert(s.Rates, req.Amount, req.Currency, project.Currency)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to convert transfer amount to project currency: %w", err)
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		wallet, err := s.GetWallet(ctx, req.WalletOwnerID)
		if err != nil {
			return nil, nil, err
		}

		amountInWallet, err := currency.Convert(s.Rates, req.Amount, req.Currency, wallet.Currency)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to convert transfer amount to wallet currency: %w", err)
		}
		if amountInWallet > wallet.Balance {
			return nil, nil, fmt.Errorf("%w: withdrawal of %d exceeds balance %d", storage.ErrInsufficientFunds, amountInWallet, wallet.Balance)
		}

		transferID := uuid.New().String()
		record := &models.FinanceRecord{
			ID:             uuid.New().String(),
			ProjectID:      project.ID,
			Type:           models.FinanceIncome,
			Amount:         amountInProject,
			Currency:       project.Currency,
			Date:           now,
			Category:       "Wallet Withdrawal",
			RecordedByUID:  req.RecordedByUID,
			LinkedRecordID: transferID,
			CreatedAt:      now,
		}
		recordAV, err := attributevalue.MarshalMap(record)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal finance record: %w", err)
		}

		delta, err := s.buildWalletDelta(wallet, amountInWallet, models.TransactionExpense, transferID, req.Note, now)
		if err != nil {
			return nil, nil, err
		}

		input := &dynamodb.TransactWriteItemsInput{
			TransactItems: append([]types.TransactWriteItem{
				{
					Put: &types.Put{
						TableName:           aws.String(s.Tables.Finances),
						Item:                recordAV,
						ConditionExpression: aws.String("attribute_not_exists(id)"),
					},
				},
			}, delta.Items...),
		}

		_, err = s.Client.TransactWriteItems(ctx, input)
		if err != nil {
			if isConditionalCancellation(err) {
				continue
			}
			return nil, nil, fmt.Errorf("failed to execute withdrawal transaction: %w", err)
		}

		s.publishEvent(ctx, &events.LedgerEvent{
			Kind:           events.KindWalletWithdrawn,
			WalletOwnerID:  wallet.OwnerID,
			ProjectID:      project.ID,
			LinkedRecordID: transferID,
			Amount:         amountInWallet,
			Currency:       wallet.Currency,
			OccurredAt:     now,
		})

		return record, delta.Transaction, nil
	}

	return nil, nil, fmt.Errorf("%w: withdrawing from wallet %s", storage.ErrConflict, req.WalletOwnerID)
}
