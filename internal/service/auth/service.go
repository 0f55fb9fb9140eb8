package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/auth"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/user"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	hashed := string(hash)
	return hashed, nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpires, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.UserID = userData.ID
	tokenResponse.Email = userData.Email
	return tokenResponse, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	existing, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	}
	if existing.ID != "" {
		return auth.TokenResponse{}, user.ErrEmailExists
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		Name:         &req.Name,
		PasswordHash: &hashedPassword,
	}
	newUser, err = a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueTokens(newUser)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.HasPassword() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// LoginWithGoogle implements auth.AuthService. First-time Google sign-in
// creates the account; an existing password account with the same email
// simply signs in under its Google identity.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, providerID string, name string) (auth.TokenResponse, error) {
	provider := "google"

	userData, err := a.UserRepository.GetByOAuth(ctx, provider, providerID)
	if err == nil {
		return a.issueTokens(userData)
	}
	if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by oauth identity: %w", err)
	}

	userData, err = a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
		}

		newUser := user.User{
			Email:           email,
			Name:            &name,
			OAuthProvider:   &provider,
			OAuthProviderID: &providerID,
		}
		userData, err = a.UserRepository.Create(ctx, newUser)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresAt, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Email)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}
