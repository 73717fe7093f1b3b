package usecase

import (
	"context"

	"auction-house/internal/house"
	"auction-house/internal/pkg/errs"
	"auction-house/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*AccountView, error)
	Login(ctx context.Context, email, password string) (string, *AccountView, error)
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type authUseCaseImpl struct {
	house      *house.House
	jwtService *jwt.Service
}

func NewAuthUseCase(h *house.House, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		house:      h,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(_ context.Context, email, password string) (*AccountView, error) {
	acct, err := a.house.Register(email, password)
	if err != nil {
		return nil, err
	}
	return newAccountView(acct), nil
}

func (a *authUseCaseImpl) Login(_ context.Context, email, password string) (string, *AccountView, error) {
	acct, err := a.house.Login(email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(acct.ID(), acct.Email().Value())
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	return token, newAccountView(acct), nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}
	return claims.AccountID, claims.Email, nil
}
