package usecase

import (
	"errors"
	"time"

	authdomain "meetsync-backend/internal/auth/domain"
	authdto "meetsync-backend/internal/auth/dto"
	"meetsync-backend/internal/auth/repository"
	"meetsync-backend/pkg/config"
	"meetsync-backend/pkg/utils/crypto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo        repository.UserRepository
	config          *config.Config
	connectCallback func(userID string) // invoked after a provider workspace is linked
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) *authUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

// SetConnectCallback allows wiring the post-connect hook after creation.
// Used to initialize sync state and kick off the initial sync.
func (u *authUsecase) SetConnectCallback(cb func(userID string)) {
	u.connectCallback = cb
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, errors.New("invalid email or password")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Refresh(req *authdto.RefreshRequest) (*authdto.TokenResponse, error) {
	stored, err := u.userRepo.FindRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("invalid or expired refresh token")
	}

	user, err := u.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	// Rotate the refresh token
	if err := u.userRepo.DeleteRefreshToken(req.RefreshToken); err != nil {
		return nil, err
	}

	return u.generateTokens(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, errors.New("invalid token subject")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// ConnectProvider stores the workspace credential (encrypted) and marks the
// user as connected. The first connection triggers sync-state creation and
// an initial sync via the connect callback.
func (u *authUsecase) ConnectProvider(userID string, req *authdto.ConnectProviderRequest) error {
	if req.APIKey == "" && req.AccessToken == "" {
		return errors.New("either api_key or access_token is required")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if req.APIKey != "" {
		encrypted, err := crypto.Encrypt(req.APIKey, u.config.EncryptionKey)
		if err != nil {
			return err
		}
		user.ProviderAPIKey = encrypted
		user.ProviderAccessToken = ""
		user.ProviderRefreshToken = ""
	} else {
		encryptedAccess, err := crypto.Encrypt(req.AccessToken, u.config.EncryptionKey)
		if err != nil {
			return err
		}
		user.ProviderAccessToken = encryptedAccess
		user.ProviderAPIKey = ""
		if req.RefreshToken != "" {
			encryptedRefresh, err := crypto.Encrypt(req.RefreshToken, u.config.EncryptionKey)
			if err != nil {
				return err
			}
			user.ProviderRefreshToken = encryptedRefresh
		}
	}

	firstConnection := !user.ProviderConnected()
	now := time.Now()
	user.ProviderConnectedAt = &now

	if err := u.userRepo.Update(user); err != nil {
		return err
	}

	if firstConnection && u.connectCallback != nil {
		u.connectCallback(user.ID)
	}
	return nil
}

func (u *authUsecase) generateTokens(user *authdomain.User) (*authdto.TokenResponse, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	refreshToken := &authdomain.RefreshToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(u.config.JWTRefreshExpiry),
	}
	if err := u.userRepo.SaveRefreshToken(refreshToken); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         user,
	}, nil
}
