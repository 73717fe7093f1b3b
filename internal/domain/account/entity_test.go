//go:build unit

package account_test

import (
	"sync"
	"testing"
	"time"

	"auction-house/internal/domain/account"
	"auction-house/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	email, err := account.NewEmail("pedro@email.com")
	require.NoError(t, err)

	now := time.Now()
	acct := account.NewAccount(email, "hashed", 100, now)

	assert.NotEqual(t, uuid.Nil, acct.ID())
	assert.Equal(t, "pedro@email.com", acct.Email().Value())
	assert.Equal(t, int64(100), acct.Funds())
	assert.Empty(t, acct.History())
}

func TestDebitAndRecord(t *testing.T) {
	email, _ := account.NewEmail("pedro@email.com")
	now := time.Now()
	acct := account.NewAccount(email, "hashed", 100, now)

	require.True(t, acct.Debit(catalog.TypeSlow.Price()))
	acct.Record(account.NewPurchase(catalog.TypeSlow, now))

	assert.Equal(t, int64(80), acct.Funds())
	require.Len(t, acct.History(), 1)
	assert.Equal(t, account.KindPurchase, acct.History()[0].Kind)

	acct.Record(account.NewAuctionWin(catalog.TypeFast, 55, now))
	require.Len(t, acct.History(), 2)
	assert.Equal(t, int64(55), acct.History()[1].Value)

	// History is a copy, the log itself stays append-only.
	h := acct.History()
	h[0].Value = 999
	assert.Equal(t, catalog.TypeSlow.Price(), acct.History()[0].Value)
}

func TestDebitInsufficientFunds(t *testing.T) {
	email, _ := account.NewEmail("pedro@email.com")
	acct := account.NewAccount(email, "hashed", 30, time.Now())

	assert.False(t, acct.Debit(40))
	assert.Equal(t, int64(30), acct.Funds())
}

func TestDebitConcurrent(t *testing.T) {
	email, _ := account.NewEmail("pedro@email.com")
	acct := account.NewAccount(email, "hashed", 100, time.Now())

	// 10 racing debits of 20 against a balance of 100: exactly 5 succeed.
	var wg sync.WaitGroup
	results := make(chan bool, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- acct.Debit(20)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, int64(0), acct.Funds())
}

func TestEmailValidation(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "valid email", input: "valid@example.com", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "no at sign", input: "invalidemail.com", ok: false},
		{name: "no domain", input: "user@", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := account.NewEmail(tc.input)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, account.ErrInvalidEmail)
			}
		})
	}
}
