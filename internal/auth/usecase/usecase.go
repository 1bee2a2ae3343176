package usecase

import (
	authdomain "meetsync-backend/internal/auth/domain"
	authdto "meetsync-backend/internal/auth/dto"
)

// AuthUsecase handles user accounts, tokens and provider connections
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Refresh(req *authdto.RefreshRequest) (*authdto.TokenResponse, error)
	ValidateToken(token string) (*authdomain.User, error)

	ConnectProvider(userID string, req *authdto.ConnectProviderRequest) error
}
