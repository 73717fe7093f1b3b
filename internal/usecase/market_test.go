//go:build unit

package usecase_test

import (
	"context"
	"strconv"
	"testing"

	"auction-house/internal/domain/catalog"
	"auction-house/internal/house"
	"auction-house/internal/pkg/clock"
	"auction-house/internal/pkg/config"
	"auction-house/internal/pkg/errs"
	"auction-house/internal/pkg/ids"
	"auction-house/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMarketUseCase(t *testing.T) (usecase.MarketUseCase, *house.House) {
	t.Helper()
	cfg := config.NewTestConfig().House
	h, err := house.New(cfg, clock.NewRealClock(), ids.NewSequence())
	require.NoError(t, err)
	return usecase.NewMarketUseCase(h), h
}

func TestListInventoryViews(t *testing.T) {
	uc, h := newMarketUseCase(t)
	h.Restock(catalog.TypeSlow, 2)
	h.Restock(catalog.TypeFast, 1)
	_, err := h.Register("a@x.com", "password123")
	require.NoError(t, err)
	_, err = uc.Buy(context.Background(), "Slow", "a@x.com")
	require.NoError(t, err)

	got := uc.ListInventory(context.Background())

	want := []usecase.InventoryItemView{
		{ResourceType: "Slow", Price: 20, Available: 1, Held: 1},
		{ResourceType: "Fast", Price: 40, Available: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("inventory views mismatch (-want +got):\n%s", diff)
	}
}

func TestBuyParsesResourceType(t *testing.T) {
	uc, h := newMarketUseCase(t)
	h.Restock(catalog.TypeSlow, 1)
	_, err := h.Register("a@x.com", "password123")
	require.NoError(t, err)

	_, err = uc.Buy(context.Background(), "Turbo", "a@x.com")
	assert.ErrorIs(t, err, errs.ErrInvalidResourceType)

	id, err := uc.Buy(context.Background(), "Slow", "a@x.com")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestDropParsesID(t *testing.T) {
	uc, h := newMarketUseCase(t)
	h.Restock(catalog.TypeSlow, 1)
	_, err := h.Register("a@x.com", "password123")
	require.NoError(t, err)

	_, err = uc.Drop(context.Background(), "a@x.com", "not-a-number")
	assert.ErrorIs(t, err, errs.ErrInvalidID)

	id, err := uc.Buy(context.Background(), "Slow", "a@x.com")
	require.NoError(t, err)

	dropped, err := uc.Drop(context.Background(), "a@x.com", "999999")
	require.NoError(t, err)
	assert.False(t, dropped)

	dropped, err = uc.Drop(context.Background(), "a@x.com", strconv.FormatUint(id, 10))
	require.NoError(t, err)
	assert.True(t, dropped)
}

func TestMyDropletsViews(t *testing.T) {
	uc, h := newMarketUseCase(t)
	h.Restock(catalog.TypeSlow, 1)
	_, err := h.Register("a@x.com", "password123")
	require.NoError(t, err)

	id, err := uc.Buy(context.Background(), "Slow", "a@x.com")
	require.NoError(t, err)

	got := uc.MyDroplets(context.Background(), "a@x.com")
	want := []usecase.DropletView{
		{ID: id, ResourceType: "Slow", Value: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("droplet views mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileView(t *testing.T) {
	uc, h := newMarketUseCase(t)
	h.Restock(catalog.TypeFast, 1)
	_, err := h.Register("a@x.com", "password123")
	require.NoError(t, err)

	_, err = uc.Buy(context.Background(), "Fast", "a@x.com")
	require.NoError(t, err)

	view, err := uc.Profile(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, int64(60), view.Funds)
	require.Len(t, view.History, 1)
	assert.Equal(t, "bought", view.History[0].Kind)

	_, err = uc.Profile(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, errs.ErrInvalidClient)
}
