package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/google/uuid"
)

// EnsureWallet creates the owner's wallet if it does not exist yet. A nonzero
// opening balance is recorded as an initial add transaction in the same batch,
// so replaying the transaction history always reproduces the stored balance.
// The wallet write is conditional on absence, so concurrent calls for the same
// owner are safe: the loser of the race reads back the wallet the winner
// created.
func (s *Store) EnsureWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = time.Now().UTC()
	}
	if wallet.Version == 0 {
		wallet.Version = 1
	}

	walletAV, err := attributevalue.MarshalMap(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	if wallet.Balance == 0 {
		_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.Tables.Wallets),
			Item:                walletAV,
			ConditionExpression: aws.String("attribute_not_exists(owner_id)"),
		})
		if err != nil {
			var condCheckFailed *types.ConditionalCheckFailedException
			if errors.As(err, &condCheckFailed) {
				// Wallet already exists; creation is idempotent.
				return s.GetWallet(ctx, wallet.OwnerID)
			}
			return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
		}
		return wallet, nil
	}

	openingTx := &models.WalletTransaction{
		ID:            uuid.New().String(),
		WalletOwnerID: wallet.OwnerID,
		Amount:        wallet.Balance,
		Type:          models.TransactionAdd,
		Note:          "opening balance",
		Timestamp:     wallet.CreatedAt,
	}
	txAV, err := attributevalue.MarshalMap(openingTx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal opening transaction: %w", err)
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Wallets),
					Item:                walletAV,
					ConditionExpression: aws.String("attribute_not_exists(owner_id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Transactions),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			// Wallet already exists; creation is idempotent.
			return s.GetWallet(ctx, wallet.OwnerID)
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return wallet, nil
}

// GetWallet retrieves an owner's wallet from DynamoDB.
func (s *Store) GetWallet(ctx context.Context, ownerID string) (*models.Wallet, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet owner ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Wallets),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: owner %s", storage.ErrWalletNotFound, ownerID)
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Item, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return &wallet, nil
}

// ListWallets retrieves all wallets from DynamoDB.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Wallets),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallets table: %w", err)
	}

	var wallets []models.Wallet
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}

	return wallets, nil
}
