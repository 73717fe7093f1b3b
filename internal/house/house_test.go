//go:build unit

package house_test

import (
	"testing"

	"auction-house/internal/domain/catalog"
	"auction-house/internal/house"
	"auction-house/internal/pkg/clock"
	"auction-house/internal/pkg/config"
	"auction-house/internal/pkg/errs"
	"auction-house/internal/pkg/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHouse(t *testing.T, mutate ...func(*config.HouseConfig)) *house.House {
	t.Helper()
	cfg := config.NewTestConfig().House
	for _, m := range mutate {
		m(&cfg)
	}
	h, err := house.New(cfg, clock.NewRealClock(), ids.NewSequence())
	require.NoError(t, err)
	return h
}

func register(t *testing.T, h *house.House, email string) {
	t.Helper()
	_, err := h.Register(email, "password123")
	require.NoError(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	h := newTestHouse(t)

	_, err := h.Register("a@x.com", "password123")
	require.NoError(t, err)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := h.Register("a@x.com", "password123")
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := h.Login("a@x.com", "wrong-password")
		assert.ErrorIs(t, err, errs.ErrInvalidClient)
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		_, err := h.Login("nobody@x.com", "password123")
		assert.ErrorIs(t, err, errs.ErrInvalidClient)
	})

	t.Run("valid credentials accepted", func(t *testing.T) {
		acct, err := h.Login("a@x.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", acct.Email().Value())
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		_, err := h.Register("not-an-email", "password123")
		assert.Error(t, err)
	})
}

func TestBuyScenario(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeSlow, 2)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		register(t, h, email)
	}

	idA, err := h.Buy(catalog.TypeSlow, "a@x.com")
	require.NoError(t, err)
	assert.NotZero(t, idA)
	assert.Equal(t, uint64(1), h.Available(catalog.TypeSlow))

	idB, err := h.Buy(catalog.TypeSlow, "b@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)
	assert.Equal(t, uint64(0), h.Available(catalog.TypeSlow))

	_, err = h.Buy(catalog.TypeSlow, "c@x.com")
	assert.ErrorIs(t, err, errs.ErrOutOfStock)
}

func TestBuyValidation(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeSlow, 1)

	t.Run("unregistered buyer rejected", func(t *testing.T) {
		_, err := h.Buy(catalog.TypeSlow, "ghost@x.com")
		assert.ErrorIs(t, err, errs.ErrInvalidClient)
	})

	t.Run("purchase spends funds and records history", func(t *testing.T) {
		register(t, h, "a@x.com")

		_, err := h.Buy(catalog.TypeSlow, "a@x.com")
		require.NoError(t, err)

		acct, err := h.Profile("a@x.com")
		require.NoError(t, err)
		assert.Equal(t, int64(100-20), acct.Funds())
		require.Len(t, acct.History(), 1)
		assert.Equal(t, catalog.TypeSlow, acct.History()[0].ResourceType)
	})

	t.Run("insufficient funds leaves stock untouched", func(t *testing.T) {
		broke := newTestHouse(t, func(cfg *config.HouseConfig) { cfg.StartingFunds = 10 })
		broke.Restock(catalog.TypeFast, 1)
		register(t, broke, "b@x.com")

		_, err := broke.Buy(catalog.TypeFast, "b@x.com")
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, uint64(1), broke.Available(catalog.TypeFast))
	})
}

func TestDropReservation(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeSlow, 1)
	register(t, h, "owner@x.com")
	register(t, h, "other@x.com")

	id, err := h.Buy(catalog.TypeSlow, "owner@x.com")
	require.NoError(t, err)
	require.Equal(t, uint64(0), h.Available(catalog.TypeSlow))

	t.Run("ownership mismatch returns false", func(t *testing.T) {
		assert.False(t, h.DropReservation("other@x.com", id))
		assert.Equal(t, uint64(0), h.Available(catalog.TypeSlow))
	})

	t.Run("owner drop releases the unit exactly once", func(t *testing.T) {
		assert.True(t, h.DropReservation("owner@x.com", id))
		assert.Equal(t, uint64(1), h.Available(catalog.TypeSlow))

		assert.False(t, h.DropReservation("owner@x.com", id))
		assert.Equal(t, uint64(1), h.Available(catalog.TypeSlow))
	})

	t.Run("unknown id returns false", func(t *testing.T) {
		assert.False(t, h.DropReservation("owner@x.com", 9999))
	})
}

func TestListReservations(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeSlow, 3)
	register(t, h, "a@x.com")
	register(t, h, "b@x.com")

	idA1, _ := h.Buy(catalog.TypeSlow, "a@x.com")
	idA2, _ := h.Buy(catalog.TypeSlow, "a@x.com")
	_, err := h.Buy(catalog.TypeSlow, "b@x.com")
	require.NoError(t, err)

	mine := h.ListReservationsFor("a@x.com")
	require.Len(t, mine, 2)
	got := map[uint64]bool{mine[0].ID(): true, mine[1].ID(): true}
	assert.True(t, got[idA1])
	assert.True(t, got[idA2])

	assert.Len(t, h.ListReservationsFor("b@x.com"), 1)
	assert.Empty(t, h.ListReservationsFor("nobody@x.com"))
}

func TestListInventory(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeSlow, 2)
	h.Restock(catalog.TypeFast, 1)

	entries := h.ListInventory()
	require.Len(t, entries, 2)
	assert.Equal(t, house.StockEntry{Type: catalog.TypeSlow, Available: 2}, entries[0])
	assert.Equal(t, house.StockEntry{Type: catalog.TypeFast, Available: 1}, entries[1])
}

func TestReservationSummary(t *testing.T) {
	h := newTestHouse(t)
	h.Restock(catalog.TypeSlow, 3)
	register(t, h, "a@x.com")
	register(t, h, "b@x.com")

	_, err := h.Buy(catalog.TypeSlow, "a@x.com")
	require.NoError(t, err)
	_, err = h.Buy(catalog.TypeSlow, "b@x.com")
	require.NoError(t, err)

	summary := h.ReservationSummary()
	require.Len(t, summary, 2)
	assert.Equal(t, house.ReservationCount{Type: catalog.TypeSlow, Held: 2}, summary[0])
	assert.Equal(t, house.ReservationCount{Type: catalog.TypeFast, Held: 0}, summary[1])
}

func TestNewRejectsUnknownAutoExpireType(t *testing.T) {
	cfg := config.NewTestConfig().House
	cfg.AutoExpireTypes = []string{"Medium"}

	_, err := house.New(cfg, clock.NewRealClock(), ids.NewSequence())
	assert.ErrorIs(t, err, errs.ErrInvalidResourceType)
}
