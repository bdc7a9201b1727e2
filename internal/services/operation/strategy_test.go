package operation

import (
	"testing"

	"walletpay/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestForOperationType(t *testing.T) {
	tests := []struct {
		name    string
		id      uint
		wantErr bool
	}{
		{name: "top-up maps to credit strategy", id: models.OperationTypeTopup},
		{name: "withdrawal maps to debit strategy", id: models.OperationTypeWithdrawal},
		{name: "unregistered id fails", id: 999, wantErr: true},
		{name: "zero id fails", id: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ForOperationType(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedOperation)
				assert.Nil(t, s)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, s)
			}
		})
	}
}

func TestCalculatePercent(t *testing.T) {
	tests := []struct {
		name   string
		rate   int64
		amount string
		want   string
	}{
		{name: "ten percent of 100.00", rate: 10, amount: "100.00", want: "10.00"},
		{name: "ten percent of zero", rate: 10, amount: "0", want: "0"},
		{name: "preserves sub-cent precision", rate: 10, amount: "0.05", want: "0.005"},
		{name: "ten percent of 33.33", rate: 10, amount: "33.33", want: "3.333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, id := range []uint{models.OperationTypeTopup, models.OperationTypeWithdrawal} {
				s, err := ForOperationType(id)
				assert.NoError(t, err)

				got := s.CalculatePercent(tt.rate, decimal.RequireFromString(tt.amount))
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateAmount(t *testing.T) {
	balance := decimal.RequireFromString("500.00")
	adjusted := decimal.RequireFromString("10.00")

	credit, err := ForOperationType(models.OperationTypeTopup)
	assert.NoError(t, err)
	assert.True(t, credit.CalculateAmount(balance, adjusted).Equal(decimal.RequireFromString("510.00")))

	debit, err := ForOperationType(models.OperationTypeWithdrawal)
	assert.NoError(t, err)
	assert.True(t, debit.CalculateAmount(balance, adjusted).Equal(decimal.RequireFromString("490.00")))
}
