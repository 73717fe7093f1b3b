package house

import (
	"log/slog"

	"auction-house/internal/domain/account"
	"auction-house/internal/domain/catalog"
	"auction-house/internal/domain/reservation"
	"auction-house/internal/pkg/errs"
	"auction-house/internal/pkg/task"
)

// Buy reserves one unit of the type for the account. The stock check, the
// decrement and the reservation insert all happen under the stock lock, so no
// caller can observe a unit that is neither available nor reserved.
func (h *House) Buy(t catalog.ResourceType, email string) (uint64, error) {
	acct, err := h.lookup(email)
	if err != nil {
		return 0, err
	}

	h.stockMu.Lock()
	defer h.stockMu.Unlock()

	if h.stock[t] == 0 {
		return 0, errs.Mark(errs.New("no "+t.String()+" units left"), errs.ErrOutOfStock)
	}
	if !acct.Debit(t.Price()) {
		return 0, errs.ErrInsufficientFunds
	}
	h.stock[t]--

	h.reservationsMu.Lock()
	id := h.ids.Next()
	res := reservation.New(id, t, email, t.Price(), reservation.PoolPurchase, h.clock.Now())
	h.purchased[id] = res
	if h.autoExpire[t] {
		res.AttachExpiry(task.New(h.cfg.ExpiryTicks, h.cfg.TickInterval, func() {
			h.expireReservation(id)
		}))
	}
	h.reservationsMu.Unlock()

	acct.Record(account.NewPurchase(t, h.clock.Now()))
	return id, nil
}

// DropReservation removes the droplet and returns its unit to stock. It
// reports false, not an error, on unknown id or ownership mismatch, since
// both are expected outcomes for a caller typing ids by hand.
func (h *House) DropReservation(email string, id uint64) bool {
	h.stockMu.Lock()
	defer h.stockMu.Unlock()
	h.reservationsMu.Lock()
	defer h.reservationsMu.Unlock()

	res, ok := h.purchased[id]
	if !ok {
		res, ok = h.auctionWins[id]
	}
	if !ok || res.Owner() != email {
		return false
	}

	delete(h.purchased, id)
	delete(h.auctionWins, id)
	h.stock[res.ResourceType()]++
	return true
}

// ListReservationsFor snapshots the droplets owned by the account, from both
// pools, unordered.
func (h *House) ListReservationsFor(email string) []*reservation.Reservation {
	h.reservationsMu.RLock()
	defer h.reservationsMu.RUnlock()

	var out []*reservation.Reservation
	for _, res := range h.purchased {
		if res.Owner() == email {
			out = append(out, res)
		}
	}
	for _, res := range h.auctionWins {
		if res.Owner() == email {
			out = append(out, res)
		}
	}
	return out
}

// ReservationCount is a per-type tally of held droplets.
type ReservationCount struct {
	Type catalog.ResourceType
	Held uint64
}

// ReservationSummary counts held droplets per resource type across both
// pools, in catalog order.
func (h *House) ReservationSummary() []ReservationCount {
	h.reservationsMu.RLock()
	defer h.reservationsMu.RUnlock()

	counts := make(map[catalog.ResourceType]uint64, len(catalog.All()))
	for _, res := range h.purchased {
		counts[res.ResourceType()]++
	}
	for _, res := range h.auctionWins {
		counts[res.ResourceType()]++
	}

	out := make([]ReservationCount, 0, len(catalog.All()))
	for _, t := range catalog.All() {
		out = append(out, ReservationCount{Type: t, Held: counts[t]})
	}
	return out
}

// expireReservation is the unchecked auto-release: the body of a purchase
// droplet's expiry task. The task itself is the authorization, so there is no
// owner check. It races against explicit drops of the same id; whichever
// finds the entry present performs the release, the other no-ops.
func (h *House) expireReservation(id uint64) {
	h.stockMu.Lock()
	defer h.stockMu.Unlock()
	h.reservationsMu.Lock()
	defer h.reservationsMu.Unlock()

	res, ok := h.purchased[id]
	if !ok {
		// Already dropped; nothing to release.
		slog.Debug("expiry fired for removed reservation", "id", id)
		return
	}

	delete(h.purchased, id)
	h.stock[res.ResourceType()]++
	slog.Info("reservation expired",
		"id", id, "type", res.ResourceType().String(), "owner", res.Owner())
}
