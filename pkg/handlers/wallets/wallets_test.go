package wallets

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/finbooks/finbooks/pkg/api"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/finbooks/finbooks/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureWallet(t *testing.T) {
	newApiWallet := api.NewWallet{OwnerID: "user-a", Currency: "USD"}
	expectedWallet := &models.Wallet{
		OwnerID:   "user-a",
		Balance:   0,
		Currency:  models.USD,
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("EnsureWallet", mock.Anything, mock.Anything).Return(expectedWallet, nil)

		h := NewWalletsHandler(mockStorage, mockStorage)

		body, _ := json.Marshal(newApiWallet)
		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.EnsureWallet(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var returned api.Wallet
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Equal(t, expectedWallet.OwnerID, returned.OwnerID)
		assert.Equal(t, string(expectedWallet.Currency), returned.Currency)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Bad Request - Invalid JSON", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := NewWalletsHandler(mockStorage, mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/wallets", strings.NewReader("not-json"))
		rr := httptest.NewRecorder()

		h.EnsureWallet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Bad Request - Missing Owner", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := NewWalletsHandler(mockStorage, mockStorage)

		body, _ := json.Marshal(api.NewWallet{Currency: "USD"})
		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.EnsureWallet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "EnsureWallet", mock.Anything, mock.Anything)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("EnsureWallet", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		h := NewWalletsHandler(mockStorage, mockStorage)

		body, _ := json.Marshal(newApiWallet)
		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.EnsureWallet(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		wallet := &models.Wallet{OwnerID: "user-a", Balance: 9200, Currency: models.EUR, Version: 3}
		mockStorage.On("GetWallet", mock.Anything, "user-a").Return(wallet, nil)

		h := NewWalletsHandler(mockStorage, mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/wallets/user-a", nil)
		rr := httptest.NewRecorder()

		h.GetWallet(rr, req, "user-a")

		assert.Equal(t, http.StatusOK, rr.Code)

		var returned api.Wallet
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Equal(t, int64(9200), returned.Balance)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetWallet", mock.Anything, "missing").Return(nil, storage.ErrWalletNotFound)

		h := NewWalletsHandler(mockStorage, mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/wallets/missing", nil)
		rr := httptest.NewRecorder()

		h.GetWallet(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		txs := []models.WalletTransaction{
			{ID: "0c9f9fd1-6a6a-44b0-9c21-1a493913b4a1", WalletOwnerID: "user-a", Amount: 500, Type: models.TransactionExpense},
			{ID: "2f3f8d04-9a6e-41d3-a6a0-4f8f13f12f77", WalletOwnerID: "user-a", Amount: 1000, Type: models.TransactionAdd},
		}
		mockStorage.On("ListWalletTransactions", mock.Anything, "user-a").Return(txs, nil)

		h := NewWalletsHandler(mockStorage, mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/wallets/user-a/transactions", nil)
		rr := httptest.NewRecorder()

		h.ListTransactions(rr, req, "user-a")

		assert.Equal(t, http.StatusOK, rr.Code)

		var returned []api.WalletTransaction
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Len(t, returned, 2)
		assert.Equal(t, "EXPENSE", returned[0].Type)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListWalletTransactions", mock.Anything, "user-a").Return(nil, errors.New("query failed"))

		h := NewWalletsHandler(mockStorage, mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/wallets/user-a/transactions", nil)
		rr := httptest.NewRecorder()

		h.ListTransactions(rr, req, "user-a")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
