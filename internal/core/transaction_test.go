package core

import (
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Type:   Sale,
		Item:   "Rice",
		Amount: 5000,
		Date:   time.Now(),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"unknown type", Transaction{Type: "refund", Item: "x", Amount: 1}, ErrInvalidType},
		{"missing type", Transaction{Item: "x", Amount: 1}, ErrInvalidType},
		{"empty item", Transaction{Type: Expense, Item: "   ", Amount: 1}, ErrEmptyItem},
		{"negative amount", Transaction{Type: Sale, Item: "x", Amount: -1}, ErrNegativeAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.tx.Validate(); err != tc.want {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}

	zero := Transaction{Type: Expense, Item: "x", Amount: 0}
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero amount should be valid, got %v", err)
	}
}
