package wallet

import (
	"errors"
	"math"
)

var (
	// errors
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// OpeningBalance is the balance of a freshly seeded wallet.
const OpeningBalance = 150.0

// QuickAmounts are the one-click top-up amounts.
var QuickAmounts = []float64{25, 50, 100, 200}

type Type string

// Transaction types
const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

type Status string

// Transaction statuses
const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

type Transaction struct {
	ID          string  `json:"id" yaml:"id"`
	Type        Type    `json:"type" yaml:"type"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Description string  `json:"description" yaml:"description"`
	Date        string  `json:"date" yaml:"date"`
	Status      Status  `json:"status" yaml:"status"`
}

// Delta is the effect of the transaction on the balance. Pending debits are reserved right away.
func (tx Transaction) Delta() float64 {
	if tx.Type == TypeDebit {
		return -tx.Amount
	}
	return tx.Amount
}

// Wallet is the balance and the transaction history, newest first.
type Wallet struct {
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// RoundAmount rounds to the cent.
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}
