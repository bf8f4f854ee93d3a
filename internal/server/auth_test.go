package server

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gravitas-games/hextile/internal/config"
)

const testIssuer = "login.test"

// keyServer serves the PEM public key of a fresh P-256 key pair.
func keyServer(t *testing.T) (*ecdsa.PrivateKey, *httptest.Server) {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	pemData := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pemData)
	}))
	t.Cleanup(ts.Close)
	return priv, ts
}

func authConfig(keyURL string) *config.Config {
	cfg := config.Default()
	cfg.JWT.Issuer = testIssuer
	cfg.JWT.PublicKeyURL = keyURL
	return cfg
}

func sign(t *testing.T, priv *ecdsa.PrivateKey, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(priv)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func validClaims() Claims {
	return Claims{
		UserID:      42,
		Username:    "mapper",
		Email:       "mapper@example.com",
		AuthMethod:  "password",
		Permissions: 1,
		Activated:   1700000000,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newValidator(t *testing.T, keyURL string) *JWTValidator {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	v, err := NewJWTValidator(ctx, authConfig(keyURL), nil)
	if err != nil {
		t.Fatalf("failed to create validator: %v", err)
	}
	return v
}

func TestValidateToken(t *testing.T) {
	priv, ts := keyServer(t)
	v := newValidator(t, ts.URL)

	player, err := v.ValidateToken(context.Background(), sign(t, priv, validClaims()))
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if player.ID != "42" || player.Username != "mapper" || player.Permissions != 1 {
		t.Fatalf("unexpected player %+v", player)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	priv, ts := keyServer(t)
	v := newValidator(t, ts.URL)
	other, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone.else"
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	inactive := validClaims()
	inactive.Activated = 0
	banned := validClaims()
	banned.Activated = -1

	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	cases := map[string]string{
		"wrong issuer": sign(t, priv, wrongIssuer),
		"expired":      sign(t, priv, expired),
		"inactive":     sign(t, priv, inactive),
		"banned":       sign(t, priv, banned),
		"wrong key":    sign(t, other, validClaims()),
		"hmac":         hmac,
		"garbage":      "not.a.token",
	}
	for name, token := range cases {
		if _, err := v.ValidateToken(context.Background(), token); err == nil {
			t.Fatalf("%s: expected rejection", name)
		}
	}
}

func TestRefreshPublicKeyErrors(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()
	if _, err := NewJWTValidator(context.Background(), authConfig(notFound.URL), nil); err == nil {
		t.Fatalf("expected error for 404 key endpoint")
	}

	junk := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not pem"))
	}))
	defer junk.Close()
	if _, err := NewJWTValidator(context.Background(), authConfig(junk.URL), nil); err == nil {
		t.Fatalf("expected error for malformed key")
	}
}

func TestExtractToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.Header.Set("Sec-WebSocket-Protocol", "access_token, abc")
	if got := extractToken(r); got != "abc" {
		t.Fatalf("expected token from subprotocol, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.Header.Set("Authorization", "Bearer def")
	if got := extractToken(r); got != "def" {
		t.Fatalf("expected token from header, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/ws?token="+url.QueryEscape("ghi"), nil)
	if got := extractToken(r); got != "ghi" {
		t.Fatalf("expected token from query, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/ws", nil)
	if got := extractToken(r); got != "" {
		t.Fatalf("expected no token, got %q", got)
	}
}
