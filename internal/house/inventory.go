package house

import (
	"auction-house/internal/domain/catalog"
)

// StockEntry is one line of the inventory summary.
type StockEntry struct {
	Type      catalog.ResourceType
	Available uint64
}

// Restock adds n units of the type, creating the ledger entry when absent.
func (h *House) Restock(t catalog.ResourceType, n uint64) {
	h.stockMu.Lock()
	defer h.stockMu.Unlock()
	h.stock[t] += n
}

// ListInventory returns the available counts per type, in catalog order.
func (h *House) ListInventory() []StockEntry {
	h.stockMu.RLock()
	defer h.stockMu.RUnlock()

	out := make([]StockEntry, 0, len(catalog.All()))
	for _, t := range catalog.All() {
		out = append(out, StockEntry{Type: t, Available: h.stock[t]})
	}
	return out
}

// Available reports the current count for one type.
func (h *House) Available(t catalog.ResourceType) uint64 {
	h.stockMu.RLock()
	defer h.stockMu.RUnlock()
	return h.stock[t]
}
