package request

type BuyRequest struct {
	ResourceType string `json:"resource_type" binding:"required"`
}

type BidRequest struct {
	ResourceType string `json:"resource_type" binding:"required"`
	Amount       int64  `json:"amount" binding:"required"`
}
