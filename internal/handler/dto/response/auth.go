package response

import (
	"time"

	"auction-house/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AccountResponse struct {
	ID      uuid.UUID             `json:"id"`
	Email   string                `json:"email"`
	Funds   int64                 `json:"funds"`
	History []TransactionResponse `json:"history"`
}

type TransactionResponse struct {
	Date         time.Time `json:"date"`
	ResourceType string    `json:"resource_type"`
	Value        int64     `json:"value"`
	Kind         string    `json:"kind"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}

func NewAccountResponse(view *usecase.AccountView) AccountResponse {
	var resp AccountResponse
	_ = copier.Copy(&resp, view)
	if resp.History == nil {
		resp.History = []TransactionResponse{}
	}
	return resp
}
