package api

import (
	"errors"
	"net/http"

	reqdto "auction-house/internal/handler/dto/request"
	resdto "auction-house/internal/handler/dto/response"
	"auction-house/internal/handler/httperr"
	"auction-house/internal/handler/middleware"
	"auction-house/internal/pkg/errs"
	"auction-house/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MarketHandler struct {
	marketUseCase usecase.MarketUseCase
}

func NewMarketHandler(marketUseCase usecase.MarketUseCase) *MarketHandler {
	return &MarketHandler{
		marketUseCase: marketUseCase,
	}
}

// @Summary List inventory
// @Description Available unit counts per resource type
// @Tags market
// @Produce json
// @Success 200 {array} resdto.InventoryItemResponse
// @Router /inventory [get]
func (h *MarketHandler) ListInventory(c *gin.Context) {
	views := h.marketUseCase.ListInventory(c.Request.Context())
	c.JSON(http.StatusOK, resdto.NewInventoryResponse(views))
}

// @Summary Buy a droplet
// @Description Reserve one unit of a resource type for the authenticated account
// @Tags market
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BuyRequest true "Buy request"
// @Success 201 {object} resdto.BuyResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /droplets [post]
func (h *MarketHandler) Buy(c *gin.Context) {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req reqdto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.marketUseCase.Buy(c.Request.Context(), req.ResourceType, email)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidResourceType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource type"})
		case errors.Is(err, errs.ErrOutOfStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Out of stock"})
		case errors.Is(err, errs.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient funds"})
		case errors.Is(err, errs.ErrInvalidClient):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown account"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BuyResponse{ReservationID: id})
}

// @Summary My droplets
// @Description Droplets held by the authenticated account
// @Tags market
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.DropletResponse
// @Failure 401 {object} map[string]string
// @Router /droplets [get]
func (h *MarketHandler) MyDroplets(c *gin.Context) {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	views := h.marketUseCase.MyDroplets(c.Request.Context(), email)
	c.JSON(http.StatusOK, resdto.NewDropletsResponse(views))
}

// @Summary Drop a droplet
// @Description Release a held droplet back to stock
// @Tags market
// @Security BearerAuth
// @Param id path int true "Reservation id"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /droplets/{id} [delete]
func (h *MarketHandler) Drop(c *gin.Context) {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	dropped, err := h.marketUseCase.Drop(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	if !dropped {
		// Unknown id and ownership mismatch look the same to the caller.
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Bid on an auction
// @Description Start an auction for a resource type, or raise the running one
// @Tags market
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BidRequest true "Bid request"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auctions/bids [post]
func (h *MarketHandler) Bid(c *gin.Context) {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req reqdto.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.marketUseCase.Bid(c.Request.Context(), email, req.ResourceType, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidResourceType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource type"})
		case errors.Is(err, errs.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		case errors.Is(err, errs.ErrBidTooLow):
			c.JSON(http.StatusConflict, gin.H{"error": "Bid too low"})
		case errors.Is(err, errs.ErrInvalidClient):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown account"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusAccepted)
}
