package bootstrap

import (
	"auction-house/internal/domain/catalog"
	"auction-house/internal/house"
	"auction-house/internal/pkg/clock"
	"auction-house/internal/pkg/config"
	"auction-house/internal/pkg/ids"

	"go.uber.org/fx"
)

var HouseModule = fx.Module("house",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			ids.NewSequence,
			fx.As(new(ids.Allocator)),
		),
		NewHouse,
	),
	// Stock is seeded before the transport module starts serving.
	fx.Invoke(SeedInventory),
)

func NewHouse(cfg config.Config, clk clock.Clock, alloc ids.Allocator) (*house.House, error) {
	return house.New(cfg.House, clk, alloc)
}

func SeedInventory(h *house.House, cfg config.Config) {
	if cfg.Inventory.Slow > 0 {
		h.Restock(catalog.TypeSlow, uint64(cfg.Inventory.Slow))
	}
	if cfg.Inventory.Fast > 0 {
		h.Restock(catalog.TypeFast, uint64(cfg.Inventory.Fast))
	}
}
