package amqp

import (
	"encoding/json"
	"time"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
)

const (
	ActionCreated = "transaction.created"
	ActionDeleted = "transaction.deleted"
)

// TransactionEvent notifies downstream consumers that a transaction
// was recorded or removed. It carries enough fields for an audit
// trail without requiring a database round trip.
type TransactionEvent struct {
	Action        string    `json:"action"`
	TransactionID string    `json:"transactionId"`
	UserID        string    `json:"userId"`
	Type          string    `json:"transactionType"`
	Item          string    `json:"item"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewTransactionCreated(t core.Transaction) *TransactionEvent {
	return newEvent(ActionCreated, t)
}

func NewTransactionDeleted(t core.Transaction) *TransactionEvent {
	return newEvent(ActionDeleted, t)
}

func newEvent(action string, t core.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Action:        action,
		TransactionID: t.ID,
		UserID:        t.UserID,
		Type:          string(t.Type),
		Item:          t.Item,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Timestamp:     time.Now(),
	}
}

func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var evt TransactionEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}
