package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
)

// MemoryStore is a map-backed store used for tests and the memory
// data backend. It implements the same operations as SQLiteRepository.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]core.User
	transactions map[string]core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]core.User),
		transactions: make(map[string]core.Transaction),
	}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) CreateUser(_ context.Context, u core.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	return nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *MemoryStore) GetUserByID(_ context.Context, id string) (*core.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	user := u
	return &user, nil
}

func (m *MemoryStore) SetVoicePassphrase(_ context.Context, userID, passphrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return core.ErrNotFound
	}
	u.VoicePassphrase = passphrase
	m.users[userID] = u
	return nil
}

func (m *MemoryStore) CreateTransaction(_ context.Context, t core.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[t.ID] = t
	return nil
}

func (m *MemoryStore) ListTransactions(_ context.Context, userID string) ([]core.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	txs := make([]core.Transaction, 0)
	for _, t := range m.transactions {
		if t.UserID == userID {
			txs = append(txs, t)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	return txs, nil
}

func (m *MemoryStore) GetTransaction(_ context.Context, id string) (*core.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.transactions[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	tx := t
	return &tx, nil
}

func (m *MemoryStore) DeleteTransaction(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.transactions, id)
	return nil
}
