package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"

	_ "modernc.org/sqlite"
)

// Timestamps are stored as RFC3339Nano text so reads don't depend on
// driver-specific time handling.
const timeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) CreateUser(ctx context.Context, u core.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, voice_passphrase, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.VoicePassphrase,
		u.CreatedAt.Format(timeLayout), u.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "User saved", "id", u.ID, "email", u.Email)
	return nil
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, voice_passphrase, created_at, updated_at
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteRepository) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, voice_passphrase, created_at, updated_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteRepository) SetVoicePassphrase(ctx context.Context, userID, passphrase string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET voice_passphrase = ?, updated_at = ? WHERE id = ?`,
		passphrase, time.Now().Format(timeLayout), userID,
	)
	if err != nil {
		return fmt.Errorf("set voice passphrase: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, raw_text, transaction_type, item, amount, date, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.RawText, string(t.Type), t.Item, t.Amount,
		t.Date.Format(timeLayout), t.Currency,
		t.CreatedAt.Format(timeLayout), t.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		"user_id", t.UserID,
		"type", t.Type,
		"item", t.Item,
		"amount", t.Amount)
	return nil
}

// ListTransactions returns the user's full transaction set, newest
// date first.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, raw_text, transaction_type, item, amount, date, currency, created_at, updated_at
		FROM transactions WHERE user_id = ? ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]core.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id string) (*core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, raw_text, transaction_type, item, amount, date, currency, created_at, updated_at
		FROM transactions WHERE id = ?`, id)
	return scanTransaction(row)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*core.User, error) {
	var u core.User
	var createdAt, updatedAt string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.VoicePassphrase, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	u.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return &u, nil
}

func scanTransaction(row rowScanner) (*core.Transaction, error) {
	var t core.Transaction
	var typ, date, createdAt, updatedAt string
	err := row.Scan(&t.ID, &t.UserID, &t.RawText, &typ, &t.Item, &t.Amount, &date, &t.Currency, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	t.Type = core.TransactionType(typ)
	t.Date, _ = time.Parse(timeLayout, date)
	t.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	t.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return &t, nil
}
