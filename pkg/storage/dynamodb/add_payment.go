package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/events"
	"github.com/finbooks/finbooks/pkg/invoice"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/google/uuid"
)

// AddInvoicePayment appends a payment to the invoice, recomputes the
// collected total, derives the payment status, and writes the counterpart
// income FinanceRecord to the invoice's project — all in one atomic batch.
// There is no observable state where the invoice changed but the income
// record is missing, or vice versa.
//
// The status comparison runs against the raw line-item total; discounts and
// tax on the invoice are deliberately not netted out (observed product
// behavior, flagged to stakeholders).
func (s *Store) AddInvoicePayment(ctx context.Context, invoiceID string, payment *models.Payment) (*models.Invoice, *models.FinanceRecord, error) {
	now := time.Now().UTC()
	payment.ID = uuid.New().String()
	if payment.Date.IsZero() {
		payment.Date = now
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		// 1. Read the invoice fresh; its version guards the batch.
		inv, err := s.GetInvoice(ctx, invoiceID)
		if err != nil {
			return nil, nil, err
		}

		project, err := s.GetProject(ctx, inv.ProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get invoice project: %w", err)
		}

		// 2. Append and re-derive. The stored status is a cached projection
		// of the payment list, never edited on its own.
		payments := append(append([]models.Payment{}, inv.Payments...), *payment)
		totalPaid := invoice.TotalPaid(payments)
		invoiceTotal := invoice.Total(inv.LineItems)
		status := invoice.DeriveStatus(totalPaid, invoiceTotal)

		record := &models.FinanceRecord{
			ID:             uuid.New().String(),
			ProjectID:      inv.ProjectID,
			Type:           models.FinanceIncome,
			Amount:         payment.Amount,
			Currency:       project.Currency,
			Date:           payment.Date,
			Category:       "Invoice Payment",
			LinkedRecordID: inv.ID,
			CreatedAt:      now,
		}

		paymentsAV, err := attributevalue.Marshal(payments)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal payments: %w", err)
		}
		recordAV, err := attributevalue.MarshalMap(record)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal finance record: %w", err)
		}
		nowAV, err := attributevalue.Marshal(now)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal timestamp: %w", err)
		}

		// 3. One batch: invoice update + income record.
		input := &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					Update: &types.Update{
						TableName:           aws.String(s.Tables.Invoices),
						Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: inv.ID}},
						UpdateExpression:    aws.String("SET payments = :payments, #status = :status, updated_at = :now, version = version + :inc"),
						ConditionExpression: aws.String("version = :version"),
						ExpressionAttributeNames: map[string]string{
							"#status": "status",
						},
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":payments": paymentsAV,
							":status":   &types.AttributeValueMemberS{Value: string(status)},
							":now":      nowAV,
							":version":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", inv.Version)},
							":inc":      &types.AttributeValueMemberN{Value: "1"},
						},
					},
				},
				{
					Put: &types.Put{
						TableName:           aws.String(s.Tables.Finances),
						Item:                recordAV,
						ConditionExpression: aws.String("attribute_not_exists(id)"),
					},
				},
			},
		}

		_, err = s.Client.TransactWriteItems(ctx, input)
		if err != nil {
			if isConditionalCancellation(err) {
				// A concurrent payment bumped the invoice version; re-read
				// the payment list and re-derive from the fresh snapshot.
				continue
			}
			return nil, nil, fmt.Errorf("failed to execute payment transaction: %w", err)
		}

		inv.Payments = payments
		inv.Status = status
		inv.Version++
		inv.UpdatedAt = now

		s.publishEvent(ctx, &events.LedgerEvent{
			Kind:           events.KindPaymentAdded,
			ProjectID:      inv.ProjectID,
			InvoiceID:      inv.ID,
			LinkedRecordID: record.ID,
			Amount:         payment.Amount,
			Currency:       project.Currency,
			OccurredAt:     now,
		})

		return inv, record, nil
	}

	return nil, nil, fmt.Errorf("%w: adding payment to invoice %s", storage.ErrConflict, invoiceID)
}
