package services

import (
	"context"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
)

// TransactionStore is the persistence boundary for transactions.
// Create and delete are atomic per record; there is no cross-record
// transaction guarantee.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, t core.Transaction) error
	ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*core.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// UserStore is the persistence boundary for users.
type UserStore interface {
	CreateUser(ctx context.Context, u core.User) error
	GetUserByEmail(ctx context.Context, email string) (*core.User, error)
	GetUserByID(ctx context.Context, id string) (*core.User, error)
	SetVoicePassphrase(ctx context.Context, userID, passphrase string) error
}
