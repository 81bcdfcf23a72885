package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the identity we embed in every token.
type TokenClaims struct {
	UserID int64
	Email  string
}

// TokenManager signs and verifies the two token families:
// short-lived access tokens and long-lived refresh tokens, each with its
// own secret. Secrets come from config — never from a literal in here.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager builds a TokenManager from the injected secrets and TTLs.
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// GenerateAccessToken creates a short-lived JWT for a given user.
func (m *TokenManager) GenerateAccessToken(userID int64, email string) (string, error) {
	return m.generate(userID, email, m.accessSecret, m.accessTTL)
}

// GenerateRefreshToken creates a long-lived JWT for a given user.
func (m *TokenManager) GenerateRefreshToken(userID int64, email string) (string, error) {
	return m.generate(userID, email, m.refreshSecret, m.refreshTTL)
}

func (m *TokenManager) generate(userID int64, email string, secret []byte, ttl time.Duration) (string, error) {
	// 1. Create the claims. "userId" and "email" identify the caller,
	//    "exp"/"iat" bound the token's lifetime.
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    now.Add(ttl).Unix(),
		"iat":    now.Unix(),
	}

	// 2. Sign with HS256 and the family's secret.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateAccessToken verifies an access token and returns its identity claims.
func (m *TokenManager) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	return validate(tokenString, m.accessSecret)
}

// ValidateRefreshToken verifies a refresh token and returns its identity claims.
func (m *TokenManager) ValidateRefreshToken(tokenString string) (*TokenClaims, error) {
	return validate(tokenString, m.refreshSecret)
}

func validate(tokenString string, secret []byte) (*TokenClaims, error) {
	// 1. Parse the token, pinning the signing method so a token signed
	//    with "none" (or anything non-HMAC) is rejected outright.
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err // expired, malformed, or wrong signature
	}

	// 2. Extract the identity claims.
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userIDFloat, ok := claims["userId"].(float64)
	if !ok {
		return nil, errors.New("invalid userId claim")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("invalid email claim")
	}

	// JSON numbers arrive as float64; convert back to int64.
	return &TokenClaims{UserID: int64(userIDFloat), Email: email}, nil
}
