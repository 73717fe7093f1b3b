// Package reservation holds the droplet model: one allocated unit of a
// resource type held by an account.
package reservation

import (
	"time"

	"auction-house/internal/domain/catalog"
	"auction-house/internal/pkg/task"
)

// Pool tells which reservation table a droplet lives in. Direct purchases and
// auction settlements are kept in separate tables so each pool can apply its
// own release policy.
type Pool string

const (
	PoolPurchase Pool = "purchase"
	PoolAuction  Pool = "auction"
)

type Reservation struct {
	id           uint64
	resourceType catalog.ResourceType
	owner        string // account email
	value        int64  // price paid or winning bid
	pool         Pool
	expiry       *task.Task // nil when the type does not auto-expire
	createdAt    time.Time
}

func New(id uint64, resourceType catalog.ResourceType, owner string, value int64, pool Pool, now time.Time) *Reservation {
	return &Reservation{
		id:           id,
		resourceType: resourceType,
		owner:        owner,
		value:        value,
		pool:         pool,
		createdAt:    now,
	}
}

func (r *Reservation) ID() uint64                         { return r.id }
func (r *Reservation) ResourceType() catalog.ResourceType { return r.resourceType }
func (r *Reservation) Owner() string                      { return r.owner }
func (r *Reservation) Value() int64                       { return r.value }
func (r *Reservation) Pool() Pool                         { return r.pool }
func (r *Reservation) CreatedAt() time.Time               { return r.createdAt }

// Expiry returns the pending auto-release task, if any.
func (r *Reservation) Expiry() *task.Task {
	return r.expiry
}

// AttachExpiry ties the scheduled auto-release task to the droplet. The task
// is observational only; it cannot be cancelled through the reservation.
func (r *Reservation) AttachExpiry(t *task.Task) {
	r.expiry = t
}
