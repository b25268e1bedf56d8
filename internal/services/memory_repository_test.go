package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"heritage-server/internal/repositories"
	"heritage-server/internal/schemas"
)

// memoryAccounts is an in-memory AccountRepository with the same semantics as the Postgres one.
type memoryAccounts struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*schemas.Account
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{accounts: make(map[uuid.UUID]*schemas.Account)}
}

func clone(account *schemas.Account) *schemas.Account {
	copied := *account
	copied.Interests = slices.Clone(account.Interests)
	copied.Bookmarks = slices.Clone(account.Bookmarks)
	return &copied
}

func (m *memoryAccounts) FindByEmail(_ context.Context, email string) (*schemas.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.Email == email {
			return clone(account), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memoryAccounts) FindByID(_ context.Context, id uuid.UUID) (*schemas.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(account), nil
}

func (m *memoryAccounts) Insert(_ context.Context, account *schemas.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.accounts {
		if existing.Email == account.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	m.accounts[account.ID] = clone(account)
	return nil
}

func (m *memoryAccounts) ConsumeVerificationToken(_ context.Context, token string, now time.Time) (*schemas.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.IsVerified || account.VerificationToken == nil || *account.VerificationToken != token {
			continue
		}
		if !account.VerificationTokenExpiry.After(now) {
			continue
		}
		account.IsVerified = true
		account.VerificationToken = nil
		account.VerificationTokenExpiry = nil
		return clone(account), nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memoryAccounts) SetVerificationToken(_ context.Context, id uuid.UUID, token string, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok || account.IsVerified {
		return repositories.ErrNotFound
	}
	account.VerificationToken = &token
	account.VerificationTokenExpiry = &expiry
	return nil
}

func (m *memoryAccounts) UpdateProfile(_ context.Context, id uuid.UUID, username, email *string, interests []string) (*schemas.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if email != nil {
		for otherId, other := range m.accounts {
			if otherId != id && other.Email == *email {
				return nil, repositories.ErrDuplicateEmail
			}
		}
		account.Email = *email
	}
	if username != nil {
		account.Username = *username
	}
	if interests != nil {
		account.Interests = interests
	}
	return clone(account), nil
}

func (m *memoryAccounts) AddBookmark(_ context.Context, id uuid.UUID, itemId string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if !slices.Contains(account.Bookmarks, itemId) {
		account.Bookmarks = append(account.Bookmarks, itemId)
	}
	return slices.Clone(account.Bookmarks), nil
}

func (m *memoryAccounts) RemoveBookmark(_ context.Context, id uuid.UUID, itemId string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	account.Bookmarks = slices.DeleteFunc(account.Bookmarks, func(b string) bool { return b == itemId })
	return slices.Clone(account.Bookmarks), nil
}

// expire moves the verification token of the account with email into the past.
func (m *memoryAccounts) expire(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.Email == email {
			past := time.Now().Add(-time.Minute)
			account.VerificationTokenExpiry = &past
		}
	}
}

func (m *memoryAccounts) tokenOf(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.Email == email && account.VerificationToken != nil {
			return *account.VerificationToken
		}
	}
	return ""
}
