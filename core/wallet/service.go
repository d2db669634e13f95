package wallet

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
)

const (
	topUpDescription      = "Account top-up"
	withdrawalDescription = "Withdrawal request"
	refundPrefix          = "Refund: "
)

type (
	Repository interface {
		GetWallet() (Wallet, error)
		// AddTransaction records tx and applies its delta to the balance.
		// It returns ErrInsufficientFunds, recording nothing, when the balance would go negative.
		AddTransaction(tx Transaction) (Wallet, error)
	}

	Service struct {
		repo Repository
		conf *core.Config
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{repo: repo, conf: conf}
}

func (svc *Service) Summary() (Wallet, error) {
	return svc.repo.GetWallet()
}

// AddFunds credits the wallet right away.
func (svc *Service) AddFunds(amount float64) (Transaction, error) {
	amount = RoundAmount(amount)
	if amount <= 0 {
		return Transaction{}, core.NewFieldValidationError("amount", "amount must be greater than 0")
	}
	return svc.record(TypeCredit, StatusCompleted, amount, topUpDescription)
}

// Withdraw submits a withdrawal request: a pending debit that cannot exceed the balance.
func (svc *Service) Withdraw(amount float64) (Transaction, error) {
	amount = RoundAmount(amount)
	if amount <= 0 {
		return Transaction{}, core.NewFieldValidationError("amount", "amount must be greater than 0")
	}
	return svc.record(TypeDebit, StatusPending, amount, withdrawalDescription)
}

// Charge pays for a booked session.
func (svc *Service) Charge(amount float64, tutorName, subject string) (Transaction, error) {
	amount = RoundAmount(amount)
	if amount < 0 {
		return Transaction{}, core.NewFieldValidationError("amount", "amount cannot be negative")
	}
	return svc.record(TypeDebit, StatusCompleted, amount, fmt.Sprintf("Session with %s - %s", tutorName, subject))
}

// Refund credits back a completed debit.
func (svc *Service) Refund(tx Transaction) (Transaction, error) {
	if tx.Type != TypeDebit || tx.Status != StatusCompleted {
		return Transaction{}, core.NewFieldValidationError("transaction", "only completed payments can be refunded")
	}
	return svc.record(TypeCredit, StatusCompleted, tx.Amount, refundPrefix+tx.Description)
}

func (svc *Service) record(typ Type, status Status, amount float64, description string) (Transaction, error) {
	tx := Transaction{
		ID:          uuid.New().String(),
		Type:        typ,
		Amount:      amount,
		Description: description,
		Date:        svc.conf.ReferenceDate.Format(core.DateLayout),
		Status:      status,
	}
	if _, err := svc.repo.AddTransaction(tx); err != nil {
		if errors.Cause(err) == ErrInsufficientFunds {
			return Transaction{}, core.NewFieldValidationError("amount", ErrInsufficientFunds.Error())
		}
		return Transaction{}, errors.Wrap(err, "recording transaction")
	}
	return tx, nil
}
