package inmemdb

import (
	"github.com/trezcool/tutormate/core/wallet"
)

type walletRepository struct {
	db *walletTable
}

func NewWalletRepository(db *DB) wallet.Repository {
	return &walletRepository{db: db.wallet}
}

func (repo *walletRepository) get() wallet.Wallet {
	return wallet.Wallet{
		Balance:      repo.db.balance,
		Transactions: append([]wallet.Transaction(nil), repo.db.transactions...),
	}
}

func (repo *walletRepository) GetWallet() (wallet.Wallet, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.get(), nil
}

func (repo *walletRepository) AddTransaction(tx wallet.Transaction) (wallet.Wallet, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	balance := wallet.RoundAmount(repo.db.balance + tx.Delta())
	if balance < 0 {
		return wallet.Wallet{}, wallet.ErrInsufficientFunds
	}
	repo.db.balance = balance
	repo.db.transactions = append([]wallet.Transaction{tx}, repo.db.transactions...)
	return repo.get(), nil
}
