// Package devicecookie identifies a browser by a signed, long-lived cookie.
//
// The cookie is an HS256 JWT whose subject is a random device id. It carries
// no account and grants nothing; it only selects which state slot a request
// reads and writes.
package devicecookie

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/louisbranch/smarthealth/internal/platform/requestctx"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/requestmeta"
)

// Name is the device cookie name.
const Name = "sh_device"

const (
	issuer     = "smarthealth-web"
	minKeySize = 32
	cookieTTL  = 365 * 24 * time.Hour
)

// ErrInvalidToken reports a cookie that fails verification.
var ErrInvalidToken = errors.New("device cookie is invalid")

// Codec issues and verifies device cookies.
type Codec struct {
	key    []byte
	policy requestmeta.SchemePolicy
	now    func() time.Time
}

// New builds a codec signing with key.
func New(key []byte, policy requestmeta.SchemePolicy) (*Codec, error) {
	if len(key) < minKeySize {
		return nil, fmt.Errorf("device cookie key must be at least %d bytes", minKeySize)
	}
	return &Codec{key: append([]byte(nil), key...), policy: policy, now: time.Now}, nil
}

// GenerateKey returns a random signing key for processes started without one.
func GenerateKey() ([]byte, error) {
	key := make([]byte, minKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate device cookie key: %w", err)
	}
	return key, nil
}

// Issue mints a new device id and its signed token.
func (c *Codec) Issue() (string, string, error) {
	deviceID := uuid.NewString()
	now := c.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   deviceID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cookieTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", "", fmt.Errorf("sign device cookie: %w", err)
	}
	return deviceID, token, nil
}

// Parse verifies token and returns its device id.
func (c *Codec) Parse(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: subject is not a device id", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// Middleware resolves the device id for every request, issuing a fresh
// cookie when the request has none or an invalid one.
func (c *Codec) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(Name); err == nil {
			deviceID, err := c.Parse(cookie.Value)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(requestctx.WithDeviceID(r.Context(), deviceID)))
				return
			}
			log.Printf("device cookie rejected path=%s err=%v", r.URL.Path, err)
		}

		deviceID, token, err := c.Issue()
		if err != nil {
			log.Printf("device cookie issue failed path=%s err=%v", r.URL.Path, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     Name,
			Value:    token,
			Path:     "/",
			MaxAge:   int(cookieTTL / time.Second),
			HttpOnly: true,
			Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
			SameSite: http.SameSiteLaxMode,
		})
		next.ServeHTTP(w, r.WithContext(requestctx.WithDeviceID(r.Context(), deviceID)))
	})
}
