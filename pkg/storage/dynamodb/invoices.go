package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finbooks/finbooks/pkg/invoice"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/google/uuid"
)

// GetInvoice retrieves an invoice from DynamoDB by its ID.
func (s *Store) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": invoiceID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Invoices),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrInvoiceNotFound, invoiceID)
	}

	var inv models.Invoice
	if err := attributevalue.UnmarshalMap(result.Item, &inv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	return &inv, nil
}

// CreateInvoice persists a new invoice. Administrative statuses (Draft, Sent)
// pass through; anything else is derived from the payment list so a stored
// payment status can never start out inconsistent.
func (s *Store) CreateInvoice(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	now := time.Now().UTC()
	inv.ID = uuid.New().String()
	inv.Version = 1
	inv.CreatedAt = now
	inv.UpdatedAt = now

	switch inv.Status {
	case models.InvoiceDraft, models.InvoiceSent, models.InvoiceVoid:
		// Administrative state, kept as given.
	default:
		inv.Status = invoice.DeriveStatus(invoice.TotalPaid(inv.Payments), invoice.Total(inv.LineItems))
	}

	invAV, err := attributevalue.MarshalMap(inv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Invoices),
		Item:                invAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return inv, nil
}
