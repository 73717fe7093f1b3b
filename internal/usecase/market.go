package usecase

import (
	"context"
	"strconv"

	"auction-house/internal/domain/catalog"
	"auction-house/internal/house"
	"auction-house/internal/pkg/errs"
)

// MarketUseCase drives the auction house operation surface. Resource-type
// names and numeric ids arrive as strings from the session layer; parsing is
// owned here and malformed values come back as typed errors.
type MarketUseCase interface {
	ListInventory(ctx context.Context) []InventoryItemView
	Buy(ctx context.Context, typeName, email string) (uint64, error)
	Drop(ctx context.Context, email, rawID string) (bool, error)
	Bid(ctx context.Context, email, typeName string, amount int64) error
	MyDroplets(ctx context.Context, email string) []DropletView
	Profile(ctx context.Context, email string) (*AccountView, error)
}

type marketUseCaseImpl struct {
	house *house.House
}

func NewMarketUseCase(h *house.House) MarketUseCase {
	return &marketUseCaseImpl{house: h}
}

func (m *marketUseCaseImpl) ListInventory(_ context.Context) []InventoryItemView {
	entries := m.house.ListInventory()
	held := make(map[string]uint64, len(entries))
	for _, count := range m.house.ReservationSummary() {
		held[count.Type.String()] = count.Held
	}

	out := make([]InventoryItemView, 0, len(entries))
	for _, entry := range entries {
		view := newInventoryItemView(entry)
		view.Held = held[view.ResourceType]
		out = append(out, view)
	}
	return out
}

func (m *marketUseCaseImpl) Buy(_ context.Context, typeName, email string) (uint64, error) {
	t, err := catalog.ParseResourceType(typeName)
	if err != nil {
		return 0, err
	}
	return m.house.Buy(t, email)
}

func (m *marketUseCaseImpl) Drop(_ context.Context, email, rawID string) (bool, error) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidID)
	}
	return m.house.DropReservation(email, id), nil
}

func (m *marketUseCaseImpl) Bid(_ context.Context, email, typeName string, amount int64) error {
	t, err := catalog.ParseResourceType(typeName)
	if err != nil {
		return err
	}
	return m.house.StartOrRaiseAuction(t, email, amount)
}

func (m *marketUseCaseImpl) MyDroplets(_ context.Context, email string) []DropletView {
	droplets := m.house.ListReservationsFor(email)
	out := make([]DropletView, 0, len(droplets))
	for _, res := range droplets {
		out = append(out, newDropletView(res))
	}
	return out
}

func (m *marketUseCaseImpl) Profile(_ context.Context, email string) (*AccountView, error) {
	acct, err := m.house.Profile(email)
	if err != nil {
		return nil, err
	}
	return newAccountView(acct), nil
}
