// Package house implements the auction house: the composition root that owns
// the account directory, the inventory ledger, the reservation tables and the
// running auctions, and exposes the transactional operations across them.
//
// Locking discipline: each collection carries its own RWMutex, and every
// operation (scheduled callbacks included) acquires them in the fixed order
//
//	accounts -> stock -> reservations -> auctions
//
// No lock is held across anything that blocks except an acquisition further
// down that order. Scheduled callbacks re-enter the house by id and no-op when
// their target has already been removed.
package house

import (
	"sync"

	"auction-house/internal/domain/account"
	"auction-house/internal/domain/auction"
	"auction-house/internal/domain/catalog"
	"auction-house/internal/domain/reservation"
	"auction-house/internal/pkg/clock"
	"auction-house/internal/pkg/config"
	"auction-house/internal/pkg/ids"
)

type House struct {
	cfg   config.HouseConfig
	clock clock.Clock
	ids   ids.Allocator

	autoExpire map[catalog.ResourceType]bool

	accountsMu sync.RWMutex
	accounts   map[string]*account.Account

	stockMu sync.RWMutex
	stock   map[catalog.ResourceType]uint64

	reservationsMu sync.RWMutex
	purchased      map[uint64]*reservation.Reservation
	auctionWins    map[uint64]*reservation.Reservation

	auctionsMu sync.RWMutex
	auctions   map[catalog.ResourceType]*auction.Auction
}

func New(cfg config.HouseConfig, clk clock.Clock, alloc ids.Allocator) (*House, error) {
	autoExpire := make(map[catalog.ResourceType]bool, len(cfg.AutoExpireTypes))
	for _, name := range cfg.AutoExpireTypes {
		t, err := catalog.ParseResourceType(name)
		if err != nil {
			return nil, err
		}
		autoExpire[t] = true
	}

	return &House{
		cfg:         cfg,
		clock:       clk,
		ids:         alloc,
		autoExpire:  autoExpire,
		accounts:    make(map[string]*account.Account),
		stock:       make(map[catalog.ResourceType]uint64),
		purchased:   make(map[uint64]*reservation.Reservation),
		auctionWins: make(map[uint64]*reservation.Reservation),
		auctions:    make(map[catalog.ResourceType]*auction.Auction),
	}, nil
}
