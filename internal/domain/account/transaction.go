package account

import (
	"fmt"
	"time"

	"auction-house/internal/domain/catalog"
)

type TransactionKind string

const (
	KindPurchase TransactionKind = "bought"
	KindAuction  TransactionKind = "auctioned"
)

// Transaction is one append-only history entry on an account.
type Transaction struct {
	Date         time.Time
	ResourceType catalog.ResourceType
	Value        int64
	Kind         TransactionKind
}

func NewPurchase(resourceType catalog.ResourceType, now time.Time) Transaction {
	return Transaction{
		Date:         now,
		ResourceType: resourceType,
		Value:        resourceType.Price(),
		Kind:         KindPurchase,
	}
}

func NewAuctionWin(resourceType catalog.ResourceType, value int64, now time.Time) Transaction {
	return Transaction{
		Date:         now,
		ResourceType: resourceType,
		Value:        value,
		Kind:         KindAuction,
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("[%s] | %s | %5d | %s",
		t.Date.Format(time.RFC3339), t.ResourceType, t.Value, t.Kind)
}
