//go:build unit

package house_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-house/internal/domain/catalog"
	"auction-house/internal/pkg/config"
	"auction-house/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentBuyLastUnit(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeSlow, 1)

	const buyers = 10
	emails := make([]string, buyers)
	for i := range emails {
		emails[i] = fmt.Sprintf("buyer%d@x.com", i)
		register(t, h, emails[i])
	}

	results := make(chan error, buyers)
	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.Buy(catalog.TypeSlow, email)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	won, lost := 0, 0
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, errs.ErrOutOfStock):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won, "exactly one buyer may take the last unit")
	assert.Equal(t, buyers-1, lost)
	assert.Equal(t, uint64(0), h.Available(catalog.TypeSlow))
}

func TestUnitsAreConservedUnderChurn(t *testing.T) {
	h := newTestHouse(t, func(cfg *config.HouseConfig) { cfg.StartingFunds = 1_000_000 })

	const total = 5
	const workers = 8
	const rounds = 50

	h.Restock(catalog.TypeSlow, total)

	emails := make([]string, workers)
	for i := range emails {
		emails[i] = fmt.Sprintf("churn%d@x.com", i)
		register(t, h, emails[i])
	}

	// Workers buy and immediately drop, hammering the ledger and the
	// reservation table from both sides.
	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				id, err := h.Buy(catalog.TypeSlow, email)
				if errors.Is(err, errs.ErrOutOfStock) {
					continue
				}
				require.NoError(t, err)
				h.DropReservation(email, id)
			}
		}()
	}
	wg.Wait()

	reserved := 0
	for _, email := range emails {
		reserved += len(h.ListReservationsFor(email))
	}
	assert.Equal(t, uint64(total), h.Available(catalog.TypeSlow)+uint64(reserved),
		"available + reserved must equal total restocked")
}

func TestExpiryAndDropRace(t *testing.T) {
	// Expiry after 5 ticks of 1ms so the race window is tight.
	h := newTestHouse(t, func(cfg *config.HouseConfig) {
		cfg.ExpiryTicks = 5
		cfg.StartingFunds = 1_000_000
	})

	const total = 20
	h.Restock(catalog.TypeFast, total)
	register(t, h, "racer@x.com")

	ids := make([]uint64, 0, total)
	for range total {
		id, err := h.Buy(catalog.TypeFast, "racer@x.com")
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.Equal(t, uint64(0), h.Available(catalog.TypeFast))

	// Drop explicitly while the expiry tasks are firing. Exactly one side
	// wins each droplet; a double release would push available past total.
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.DropReservation("racer@x.com", id)
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return len(h.ListReservationsFor("racer@x.com")) == 0
	}, 2*time.Second, 2*time.Millisecond, "all droplets should be released")

	assert.Equal(t, uint64(total), h.Available(catalog.TypeFast))
}

func TestAutoExpiry(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeFast, 1)
	h.Restock(catalog.TypeSlow, 1)
	register(t, h, "a@x.com")

	t.Run("fast reservations auto-expire", func(t *testing.T) {
		id, err := h.Buy(catalog.TypeFast, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, uint64(0), h.Available(catalog.TypeFast))

		require.Eventually(t, func() bool {
			return h.Available(catalog.TypeFast) == 1
		}, 2*time.Second, 2*time.Millisecond, "unit should return to stock")

		assert.False(t, h.DropReservation("a@x.com", id), "droplet already expired")
	})

	t.Run("slow reservations do not expire", func(t *testing.T) {
		_, err := h.Buy(catalog.TypeSlow, "a@x.com")
		require.NoError(t, err)

		assert.Never(t, func() bool {
			return h.Available(catalog.TypeSlow) != 0
		}, 100*time.Millisecond, 10*time.Millisecond)
	})
}
