package response

import (
	"auction-house/internal/usecase"

	"github.com/jinzhu/copier"
)

type InventoryItemResponse struct {
	ResourceType string `json:"resource_type"`
	Price        int64  `json:"price"`
	Available    uint64 `json:"available"`
	Held         uint64 `json:"held"`
}

type DropletResponse struct {
	ID           uint64 `json:"id"`
	ResourceType string `json:"resource_type"`
	Value        int64  `json:"value"`
	ExpiryTicks  *uint  `json:"expiry_ticks,omitempty"`
}

type BuyResponse struct {
	ReservationID uint64 `json:"reservation_id"`
}

func NewInventoryResponse(views []usecase.InventoryItemView) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(views))
	_ = copier.Copy(&out, views)
	return out
}

func NewDropletsResponse(views []usecase.DropletView) []DropletResponse {
	out := make([]DropletResponse, 0, len(views))
	_ = copier.Copy(&out, views)
	return out
}
