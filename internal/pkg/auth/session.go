// internal/pkg/auth/session.go
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oncloth/storefront/internal/config"
)

// TokenTypeGuest marks tokens that identify an anonymous shopping session
const TokenTypeGuest = "guest"

var ErrInvalidSession = errors.New("invalid session token")

// Claims represents the session token claims
type Claims struct {
	SessionID string `json:"session_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates guest session tokens
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionManager creates a new session manager
func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		secret: []byte(cfg.Session.Secret),
		issuer: cfg.App.Name,
		ttl:    cfg.Session.TTL,
	}
}

// NewSession starts a fresh session and returns its id and token
func (m *SessionManager) NewSession() (string, string, error) {
	sessionID := uuid.NewString()
	token, err := m.Issue(sessionID)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

// Issue signs a token for an existing session id
func (m *SessionManager) Issue(sessionID string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		SessionID: sessionID,
		TokenType: TokenTypeGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   "session:" + sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses a token and returns its claims
func (m *SessionManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	if claims.TokenType != TokenTypeGuest {
		return nil, fmt.Errorf("%w: unexpected token type %q", ErrInvalidSession, claims.TokenType)
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return nil, fmt.Errorf("%w: malformed session id", ErrInvalidSession)
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts a token from an Authorization header
func ExtractTokenFromHeader(authHeader string) string {
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return token
	}
	return ""
}
