package wallet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/wallet"
	"github.com/trezcool/tutormate/storage/database/inmem"
	"github.com/trezcool/tutormate/tests"
)

func newService(t *testing.T) *wallet.Service {
	return wallet.NewService(inmemdb.NewWalletRepository(testutil.OpenDB(t)), testutil.NewConfig())
}

func TestService_Summary(t *testing.T) {
	w, err := newService(t).Summary()
	require.NoError(t, err)
	assert.Equal(t, wallet.OpeningBalance, w.Balance)
	require.Len(t, w.Transactions, 5)
	assert.Equal(t, "2025-11-23", w.Transactions[0].Date)
}

func TestService_AddFunds(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name        string
		amount      float64
		wantErr     bool
		wantBalance float64
	}{
		{name: "zero", amount: 0, wantErr: true, wantBalance: 150},
		{name: "negative", amount: -10, wantErr: true, wantBalance: 150},
		{name: "quick amount", amount: 25, wantBalance: 175},
		{name: "rounded to the cent", amount: 10.499, wantBalance: 185.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := svc.AddFunds(tt.amount)
			if tt.wantErr {
				assert.True(t, core.IsValidationError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, wallet.TypeCredit, tx.Type)
				assert.Equal(t, wallet.StatusCompleted, tx.Status)
				assert.Equal(t, "2025-11-24", tx.Date)
				assert.NotEmpty(t, tx.ID)
			}
			w, _ := svc.Summary()
			assert.Equal(t, tt.wantBalance, w.Balance)
		})
	}

	w, _ := svc.Summary()
	assert.Len(t, w.Transactions, 7)
	assert.Equal(t, 10.5, w.Transactions[0].Amount) // newest first
}

func TestService_Withdraw(t *testing.T) {
	svc := newService(t)

	_, err := svc.Withdraw(150.01)
	assert.True(t, core.IsValidationError(err))

	_, err = svc.Withdraw(0)
	assert.True(t, core.IsValidationError(err))

	tx, err := svc.Withdraw(150)
	require.NoError(t, err)
	assert.Equal(t, wallet.TypeDebit, tx.Type)
	assert.Equal(t, wallet.StatusPending, tx.Status)

	w, _ := svc.Summary()
	assert.Zero(t, w.Balance)

	_, err = svc.Withdraw(1)
	assert.True(t, core.IsValidationError(err))
}

func TestService_Charge(t *testing.T) {
	svc := newService(t)

	tx, err := svc.Charge(35, "Sarah Johnson", "Python")
	require.NoError(t, err)
	assert.Equal(t, "Session with Sarah Johnson - Python", tx.Description)
	assert.Equal(t, wallet.StatusCompleted, tx.Status)

	w, _ := svc.Summary()
	assert.Equal(t, 115.0, w.Balance)

	_, err = svc.Charge(200, "David Kim", "Circuit Analysis")
	assert.True(t, core.IsValidationError(err))
	w, _ = svc.Summary()
	assert.Equal(t, 115.0, w.Balance)
	assert.Len(t, w.Transactions, 6)
}

func TestService_Refund(t *testing.T) {
	svc := newService(t)

	tx, err := svc.Charge(30, "Michael Chen", "Calculus")
	require.NoError(t, err)

	refund, err := svc.Refund(tx)
	require.NoError(t, err)
	assert.Equal(t, wallet.TypeCredit, refund.Type)
	assert.Equal(t, wallet.StatusCompleted, refund.Status)
	assert.Equal(t, 30.0, refund.Amount)
	assert.Equal(t, "Refund: Session with Michael Chen - Calculus", refund.Description)

	w, _ := svc.Summary()
	assert.Equal(t, 150.0, w.Balance)

	_, err = svc.Refund(refund)
	assert.True(t, core.IsValidationError(err))
	pending, err := svc.Withdraw(10)
	require.NoError(t, err)
	_, err = svc.Refund(pending)
	assert.True(t, core.IsValidationError(err))
}
