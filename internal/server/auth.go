package server

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/pkg/models"
)

var (
	errUserInactive = errors.New("user not activated")
	errUserBanned   = errors.New("user is banned")
	errBlacklisted  = errors.New("token is blacklisted")
)

// JWTValidator handles JWT token validation
type JWTValidator struct {
	config    config.JWTConfig
	prefix    string
	publicKey *ecdsa.PublicKey
	keyMu     sync.RWMutex
	redis     *redis.Client // nil skips the blacklist
	client    *http.Client
}

// Claims represents JWT token claims from the login server
type Claims struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	AuthMethod  string `json:"auth_method"`
	Permissions int64  `json:"permissions"`
	Activated   int64  `json:"activated"`
	jwt.RegisteredClaims
}

// NewJWTValidator fetches the signing key and returns a validator. The key
// is refreshed in the background until ctx is cancelled.
func NewJWTValidator(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (*JWTValidator, error) {
	validator := &JWTValidator{
		config: cfg.JWT,
		prefix: cfg.Redis.BlacklistPrefix,
		redis:  redisClient,
		client: &http.Client{Timeout: 10 * time.Second},
	}

	if err := validator.RefreshPublicKey(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch public key: %w", err)
	}

	go validator.periodicKeyRefresh(ctx)

	log.Println("JWT validator initialized")
	return validator, nil
}

// RefreshPublicKey fetches the PEM-encoded ECDSA public key
func (v *JWTValidator) RefreshPublicKey(ctx context.Context) error {
	log.Printf("Fetching public key from %s", v.config.PublicKeyURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.config.PublicKeyURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build key request: %w", err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch public key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("public key endpoint returned status %d", resp.StatusCode)
	}

	keyData, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read public key: %w", err)
	}

	key, err := parseECDSAPublicKey(keyData)
	if err != nil {
		return err
	}

	v.keyMu.Lock()
	v.publicKey = key
	v.keyMu.Unlock()

	log.Println("Public key refreshed successfully")
	return nil
}

func parseECDSAPublicKey(data []byte) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block")
	}

	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	ecdsaKey, ok := pubKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not ECDSA")
	}
	return ecdsaKey, nil
}

func (v *JWTValidator) periodicKeyRefresh(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(v.config.PublicKeyRefreshHrs) * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := v.RefreshPublicKey(ctx); err != nil {
				log.Printf("Failed to refresh public key: %v", err)
			}
		}
	}
}

// ValidateToken validates a JWT token and returns player information
func (v *JWTValidator) ValidateToken(ctx context.Context, tokenString string) (*models.Player, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		v.keyMu.RLock()
		defer v.keyMu.RUnlock()
		return v.publicKey, nil
	}, jwt.WithIssuer(v.config.Issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	switch {
	case claims.Activated == 0:
		return nil, errUserInactive
	case claims.Activated == -1:
		return nil, errUserBanned
	}

	userID := strconv.FormatInt(claims.UserID, 10)
	if v.redis != nil {
		n, err := v.redis.Exists(ctx, v.prefix+userID).Result()
		if err != nil {
			// Don't fail authentication if Redis is down
			log.Printf("Warning: Failed to check blacklist: %v", err)
		} else if n > 0 {
			return nil, errBlacklisted
		}
	}

	return &models.Player{
		ID:          userID,
		Username:    claims.Username,
		Email:       claims.Email,
		Permissions: claims.Permissions,
		Activated:   claims.Activated,
		AuthMethod:  claims.AuthMethod,
	}, nil
}

// extractToken reads a bearer token from the websocket subprotocol header,
// the Authorization header or the token query parameter, in that order.
func extractToken(r *http.Request) string {
	// Format: "access_token, <token>"
	if protocols := r.Header.Get("Sec-WebSocket-Protocol"); protocols != "" {
		parts := strings.Split(protocols, ",")
		if len(parts) == 2 && strings.TrimSpace(parts[0]) == "access_token" {
			return strings.TrimSpace(parts[1])
		}
	}

	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && token != "" {
		return token
	}

	return r.URL.Query().Get("token")
}
