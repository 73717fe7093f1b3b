package house

import (
	"log/slog"
	"strconv"

	"auction-house/internal/domain/account"
	"auction-house/internal/domain/auction"
	"auction-house/internal/domain/catalog"
	"auction-house/internal/domain/reservation"
	"auction-house/internal/pkg/errs"
	"auction-house/internal/pkg/task"
)

// StartOrRaiseAuction folds the bid into the running auction for the type, or
// opens a new one seeded with it. A bid must be strictly greater than the
// current highest; a tie reports ErrBidTooLow, so the first high bidder keeps
// the lead.
func (h *House) StartOrRaiseAuction(t catalog.ResourceType, email string, amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if _, err := h.lookup(email); err != nil {
		return err
	}

	h.auctionsMu.Lock()
	defer h.auctionsMu.Unlock()

	bid := auction.NewBid(email, amount)
	if a, running := h.auctions[t]; running {
		if !a.Offer(bid) {
			highest := a.Highest().Value()
			return errs.Mark(
				errs.New("highest bid is "+strconv.FormatInt(highest, 10)),
				errs.ErrBidTooLow,
			)
		}
		return nil
	}

	a := auction.New(t, bid)
	a.AttachSettlement(task.New(h.cfg.AuctionTicks, h.cfg.TickInterval, func() {
		h.settleAuction(t)
	}))
	h.auctions[t] = a
	return nil
}

// RunningAuction exposes the current auction for the type, or nil. Snapshot
// for diagnostics and tests.
func (h *House) RunningAuction(t catalog.ResourceType) *auction.Auction {
	h.auctionsMu.RLock()
	defer h.auctionsMu.RUnlock()
	return h.auctions[t]
}

// settleAuction closes the auction for the type: the settlement task body.
// Removing the auction entry first makes settlement exactly-once and lets a
// new auction start while the winner is being paid out. There is no caller to
// report failures to, so they are logged and swallowed.
func (h *House) settleAuction(t catalog.ResourceType) {
	h.auctionsMu.Lock()
	a, ok := h.auctions[t]
	if ok {
		delete(h.auctions, t)
	}
	h.auctionsMu.Unlock()

	if !ok {
		slog.Debug("settlement fired for removed auction", "type", t.String())
		return
	}

	win := a.Highest()
	acct, err := h.lookup(win.Owner())
	if err != nil {
		slog.Warn("auction winner not registered", "type", t.String(), "owner", win.Owner())
		return
	}

	h.stockMu.Lock()
	if h.stock[t] == 0 {
		h.stockMu.Unlock()
		slog.Warn("auction settled with no stock, winner gets nothing",
			"type", t.String(), "owner", win.Owner(), "value", win.Value())
		return
	}
	h.stock[t]--

	h.reservationsMu.Lock()
	id := h.ids.Next()
	res := reservation.New(id, t, win.Owner(), win.Value(), reservation.PoolAuction, h.clock.Now())
	h.auctionWins[id] = res
	h.reservationsMu.Unlock()
	h.stockMu.Unlock()

	acct.Record(account.NewAuctionWin(t, win.Value(), h.clock.Now()))
	slog.Info("auction settled",
		"type", t.String(), "owner", win.Owner(), "value", win.Value(), "reservation_id", id)
}
