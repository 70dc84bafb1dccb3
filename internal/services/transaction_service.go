package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/amqp"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
)

// TransactionService orchestrates transaction persistence, the
// aggregation views and optional event publishing.
type TransactionService struct {
	store           TransactionStore
	events          *amqp.Client
	defaultCurrency string
}

// NewTransactionService wires the service. events may be nil, which
// disables publishing.
func NewTransactionService(store TransactionStore, events *amqp.Client, defaultCurrency string) *TransactionService {
	if defaultCurrency == "" {
		defaultCurrency = core.DefaultCurrency
	}
	return &TransactionService{
		store:           store,
		events:          events,
		defaultCurrency: defaultCurrency,
	}
}

// CreateTransactionInput carries the caller-supplied fields. Date and
// Currency are optional; zero values take the defaults.
type CreateTransactionInput struct {
	RawText  string
	Type     core.TransactionType
	Item     string
	Amount   float64
	Date     time.Time
	Currency string
}

// Create validates and persists a new transaction for the user.
func (s *TransactionService) Create(ctx context.Context, userID string, in CreateTransactionInput) (*core.Transaction, error) {
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	currency := in.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	t := core.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		RawText:   in.RawText,
		Type:      in.Type,
		Item:      strings.TrimSpace(in.Item),
		Amount:    in.Amount,
		Date:      date,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("save transaction: %w", err)
	}

	s.publish(ctx, amqp.NewTransactionCreated(t))
	return &t, nil
}

// List returns the user's transactions, newest date first.
func (s *TransactionService) List(ctx context.Context, userID string) ([]core.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// Delete removes a transaction after checking ownership. Returns
// core.ErrNotFound for unknown ids and core.ErrNotOwner when the
// record belongs to a different user.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	t, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	if t.UserID != userID {
		return core.ErrNotOwner
	}

	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.publish(ctx, amqp.NewTransactionDeleted(*t))
	return nil
}

// Summary computes the profit overview over the user's full set.
func (s *TransactionService) Summary(ctx context.Context, userID string) (core.Summary, error) {
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	return core.ComputeSummary(txs), nil
}

// Analytics computes the analytics view. The returned count lets
// callers distinguish an empty set, which responds as an empty object.
func (s *TransactionService) Analytics(ctx context.Context, userID string) (core.Analytics, int, error) {
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return core.Analytics{}, 0, fmt.Errorf("list transactions: %w", err)
	}
	return core.ComputeAnalytics(txs), len(txs), nil
}

// publish sends an event if a client is configured. Failures are
// logged and never fail the request; the record is already persisted.
func (s *TransactionService) publish(ctx context.Context, evt *amqp.TransactionEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishTransactionEvent(ctx, evt); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"action", evt.Action,
			"transaction_id", evt.TransactionID,
			"error", err)
	}
}
