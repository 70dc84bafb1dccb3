package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Sale    TransactionType = "sale"
	Expense TransactionType = "expense"
)

// DefaultCurrency is the fallback currency code applied when a
// transaction is recorded without one.
const DefaultCurrency = "NGN"

type (
	TransactionType string

	// Transaction is a single recorded sale or expense event tied to
	// one user. Transactions are immutable once created: the only
	// operations are create, read and delete.
	Transaction struct {
		ID        string          `json:"id"`
		UserID    string          `json:"userId"`
		RawText   string          `json:"rawText,omitempty"`
		Type      TransactionType `json:"transactionType"`
		Item      string          `json:"item"`
		Amount    float64         `json:"amount"`
		Date      time.Time       `json:"date"`
		Currency  string          `json:"currency"`
		CreatedAt time.Time       `json:"createdAt"`
		UpdatedAt time.Time       `json:"updatedAt"`
	}

	// User is referenced by transactions and holds the optional voice
	// passphrase set via enrollment.
	User struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Email           string    `json:"email"`
		PasswordHash    string    `json:"-"`
		VoicePassphrase string    `json:"-"`
		CreatedAt       time.Time `json:"createdAt"`
		UpdatedAt       time.Time `json:"updatedAt"`
	}
)

var (
	ErrInvalidType    = errors.New("transaction type must be sale or expense")
	ErrEmptyItem      = errors.New("item is required")
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrNotFound       = errors.New("not found")
	ErrNotOwner       = errors.New("not authorized")
	ErrNotEnrolled    = errors.New("no voice passphrase found")
)

func (t TransactionType) Valid() bool {
	return t == Sale || t == Expense
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Item) == "" {
		return ErrEmptyItem
	}
	if t.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
