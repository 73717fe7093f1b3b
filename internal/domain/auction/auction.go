// Package auction models a running auction for one resource type: a
// max-ordered bid pool plus the single settlement task that closes it.
package auction

import (
	"auction-house/internal/domain/catalog"
	"auction-house/internal/pkg/task"
)

type Auction struct {
	resourceType catalog.ResourceType
	pool         *Pool
	settlement   *task.Task
}

// New opens an auction seeded with its first bid. The settlement task is
// attached by the auction house once it has been scheduled.
func New(resourceType catalog.ResourceType, first Bid) *Auction {
	return &Auction{
		resourceType: resourceType,
		pool:         NewPool(first),
	}
}

func (a *Auction) ResourceType() catalog.ResourceType { return a.resourceType }

func (a *Auction) Highest() Bid {
	return a.pool.Highest()
}

func (a *Auction) Offer(b Bid) bool {
	return a.pool.Offer(b)
}

func (a *Auction) Bids() int {
	return a.pool.Len()
}

func (a *Auction) Settlement() *task.Task {
	return a.settlement
}

func (a *Auction) AttachSettlement(t *task.Task) {
	a.settlement = t
}
