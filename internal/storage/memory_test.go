package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
)

func TestMemoryStoreUsers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetUserByEmail(ctx, "ghost@example.com"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := store.SetVoicePassphrase(ctx, "ghost", "open sesame"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	u := core.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatal(err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if byEmail.ID != "u1" {
		t.Fatalf("id = %q", byEmail.ID)
	}

	if err := store.SetVoicePassphrase(ctx, "u1", "open sesame"); err != nil {
		t.Fatal(err)
	}
	byID, err := store.GetUserByID(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if byID.VoicePassphrase != "open sesame" {
		t.Fatalf("passphrase = %q", byID.VoicePassphrase)
	}

	// The returned user is a copy; mutating it must not touch the store.
	byID.Name = "changed"
	again, _ := store.GetUserByID(ctx, "u1")
	if again.Name != "Ada" {
		t.Fatalf("name = %q, store mutated through returned pointer", again.Name)
	}
}

func TestMemoryStoreTransactions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
	}
	for i, tx := range []core.Transaction{
		{ID: "t1", UserID: "u1", Type: core.Sale, Item: "rice", Amount: 100, Date: day(1)},
		{ID: "t2", UserID: "u1", Type: core.Expense, Item: "fuel", Amount: 50, Date: day(3)},
		{ID: "t3", UserID: "u2", Type: core.Sale, Item: "beans", Amount: 70, Date: day(2)},
	} {
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	txs, err := store.ListTransactions(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 {
		t.Fatalf("len = %d, want 2", len(txs))
	}
	if txs[0].ID != "t2" || txs[1].ID != "t1" {
		t.Fatalf("order = [%s %s], want newest date first", txs[0].ID, txs[1].ID)
	}

	got, err := store.GetTransaction(ctx, "t3")
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != "u2" {
		t.Fatalf("user = %q", got.UserID)
	}

	if err := store.DeleteTransaction(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteTransaction(ctx, "t1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := store.GetTransaction(ctx, "t1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	empty, err := store.ListTransactions(ctx, "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("len = %d, want 0", len(empty))
	}
}
