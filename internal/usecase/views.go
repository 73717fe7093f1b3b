package usecase

import (
	"time"

	"auction-house/internal/domain/account"
	"auction-house/internal/domain/reservation"
	"auction-house/internal/house"

	"github.com/google/uuid"
)

// Read models handed to the transport layer; plain structs so the handlers
// never touch domain entities directly.

type AccountView struct {
	ID      uuid.UUID
	Email   string
	Funds   int64
	History []TransactionView
}

type TransactionView struct {
	Date         time.Time
	ResourceType string
	Value        int64
	Kind         string
}

type DropletView struct {
	ID           uint64
	ResourceType string
	Value        int64
	ExpiryTicks  *uint // nil when the droplet does not auto-expire
}

type InventoryItemView struct {
	ResourceType string
	Price        int64
	Available    uint64
	Held         uint64
}

func newAccountView(acct *account.Account) *AccountView {
	history := acct.History()
	view := &AccountView{
		ID:      acct.ID(),
		Email:   acct.Email().Value(),
		Funds:   acct.Funds(),
		History: make([]TransactionView, 0, len(history)),
	}
	for _, tx := range history {
		view.History = append(view.History, TransactionView{
			Date:         tx.Date,
			ResourceType: tx.ResourceType.String(),
			Value:        tx.Value,
			Kind:         string(tx.Kind),
		})
	}
	return view
}

func newDropletView(res *reservation.Reservation) DropletView {
	view := DropletView{
		ID:           res.ID(),
		ResourceType: res.ResourceType().String(),
		Value:        res.Value(),
	}
	if t := res.Expiry(); t != nil {
		remaining := t.Remaining()
		view.ExpiryTicks = &remaining
	}
	return view
}

func newInventoryItemView(entry house.StockEntry) InventoryItemView {
	return InventoryItemView{
		ResourceType: entry.Type.String(),
		Price:        entry.Type.Price(),
		Available:    entry.Available,
	}
}
