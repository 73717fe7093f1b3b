package account

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Account entity. Identity key is the email; never deleted once registered.
// Funds and history carry their own leaf mutex so the directory lock can stay
// a read lock on the hot purchase path. The mutex is never held across any
// other lock acquisition.
type Account struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	createdAt    time.Time

	mu      sync.Mutex
	funds   int64
	history []Transaction
}

func NewAccount(email Email, passwordHash string, startingFunds int64, now time.Time) *Account {
	return &Account{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		funds:        startingFunds,
		createdAt:    now,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) Funds() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.funds
}

// Debit atomically checks and spends. Returns false, leaving funds untouched,
// when the balance does not cover the price.
func (a *Account) Debit(price int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.funds < price {
		return false
	}
	a.funds -= price
	return true
}

func (a *Account) Record(tx Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, tx)
}

// History returns a copy so callers cannot mutate the append-only log.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}
