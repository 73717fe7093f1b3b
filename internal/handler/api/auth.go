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

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	marketUseCase usecase.MarketUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, marketUseCase usecase.MarketUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		marketUseCase: marketUseCase,
	}
}

// @Summary Register account
// @Description Register a new account with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.authUseCase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewAccountResponse(view))
}

// @Summary Login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, view, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidClient):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Account:     resdto.NewAccountResponse(view),
	})
}

// @Summary Current account
// @Description Profile of the authenticated account: email, funds and history
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetAccountEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	view, err := h.marketUseCase.Profile(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidClient):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Account not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewAccountResponse(view))
}
