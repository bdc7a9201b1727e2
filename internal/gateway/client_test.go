package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPayment(t *testing.T) {
	t.Run("decodes the provider response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req PaymentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, uint(7), req.UserID)
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("10.00")))

			json.NewEncoder(w).Encode(PaymentResponse{WalletID: "ext-wallet-1", Status: "accepted"})
		}))
		defer server.Close()

		client := NewClient(Config{PaymentURL: server.URL})
		resp, err := client.SubmitPayment(context.Background(), PaymentRequest{
			Amount: decimal.RequireFromString("10.00"),
			UserID: 7,
		})

		require.NoError(t, err)
		assert.Equal(t, "ext-wallet-1", resp.WalletID)
	})

	t.Run("maps 4xx to ClientError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "insufficient provider funds", http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		client := NewClient(Config{PaymentURL: server.URL})
		resp, err := client.SubmitPayment(context.Background(), PaymentRequest{UserID: 7})

		assert.Nil(t, resp)
		var clientErr *ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, http.StatusUnprocessableEntity, clientErr.StatusCode)
		assert.True(t, IsClientError(err))
	})

	t.Run("5xx is not a ClientError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(Config{PaymentURL: server.URL})
		_, err := client.SubmitPayment(context.Background(), PaymentRequest{UserID: 7})

		require.Error(t, err)
		assert.False(t, IsClientError(err))
	})

	t.Run("empty success body yields zero value", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(Config{PaymentURL: server.URL})
		resp, err := client.SubmitPayment(context.Background(), PaymentRequest{UserID: 7})

		require.NoError(t, err)
		assert.Equal(t, "", resp.WalletID)
	})
}

func TestFetchBalance(t *testing.T) {
	t.Run("decodes the provider balance", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/7", r.URL.Path)
			json.NewEncoder(w).Encode(BalanceResponse{UserID: 7, Balance: decimal.RequireFromString("42.50")})
		}))
		defer server.Close()

		client := NewClient(Config{BalanceURL: server.URL})
		balance, err := client.FetchBalance(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, uint(7), balance.UserID)
		assert.True(t, balance.Balance.Equal(decimal.RequireFromString("42.50")))
	})

	t.Run("no content yields zero value", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(Config{BalanceURL: server.URL})
		balance, err := client.FetchBalance(context.Background(), 7)

		require.NoError(t, err)
		assert.True(t, balance.Balance.IsZero())
	})
}
