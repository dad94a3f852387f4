package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sentinel errors surfaced by token validation.
var (
	// ErrTokenRevoked means the token's jti appears in the revocation list.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrJWTSigningKeyMissing means no signing or verification key is configured.
	ErrJWTSigningKeyMissing = errors.New("jwt signing key missing")
)

// JWTClaims defines custom JWT claims for TenantForge.
//
// SessionVersion mirrors the versioned session-claims cache: a bumped version
// in the cache invalidates tokens minted before a membership change.
type JWTClaims struct {
	UserID         string   `json:"user_id"`
	Username       string   `json:"username"`
	OrganizationID string   `json:"organization_id,omitempty"`
	Roles          []string `json:"roles"`
	Permissions    []string `json:"permissions"`
	SessionVersion int64    `json:"session_version,omitempty"`
	jwt.RegisteredClaims
}

// RevocationChecker answers whether a token id has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTConfig holds JWT signing and verification configuration.
type JWTConfig struct {
	// SigningKey signs new tokens and is the primary verification key.
	SigningKey []byte

	// VerificationKeys are additional accepted keys, used during rotation so
	// tokens signed with the previous key stay valid until they expire.
	VerificationKeys [][]byte

	Issuer    string
	ExpiresIn time.Duration

	// RevocationChecker is optional; nil disables revocation checks.
	RevocationChecker RevocationChecker
}

// GenerateToken creates a signed JWT for the given user.
func GenerateToken(cfg JWTConfig, userID, username string, roles, permissions []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.ExpiresIn)

	jti, err := uuid.NewV7()
	if err != nil {
		jti = uuid.New()
	}

	claims := JWTClaims{
		UserID:      userID,
		Username:    username,
		Roles:       roles,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.SigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ValidateToken parses and verifies a token string against the configured
// keys, issuer and revocation list.
func (cfg JWTConfig) ValidateToken(ctx context.Context, tokenString string) (*JWTClaims, error) {
	parseOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if cfg.Issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(cfg.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		keys := make([]jwt.VerificationKey, 0, 1+len(cfg.VerificationKeys))
		if len(cfg.SigningKey) > 0 {
			keys = append(keys, cfg.SigningKey)
		}
		for _, k := range cfg.VerificationKeys {
			if len(k) > 0 {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return nil, ErrJWTSigningKeyMissing
		}
		return jwt.VerificationKeySet{Keys: keys}, nil
	}, parseOpts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if cfg.RevocationChecker != nil && claims.ID != "" {
		revoked, err := cfg.RevocationChecker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// JWTAuth returns a Gin middleware that validates Bearer tokens and populates context.
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "invalid authorization header format",
			})
			return
		}

		claims, err := cfg.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			msg := "invalid token"
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				msg = "token expired"
			case errors.Is(err, ErrTokenRevoked):
				msg = "token revoked"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": msg,
			})
			return
		}

		// Populate context for downstream handlers.
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("organization_id", claims.OrganizationID)
		c.Set("roles", claims.Roles)
		c.Set("permissions", claims.Permissions)
		c.Request = c.Request.WithContext(
			SetUserContext(c.Request.Context(), claims.UserID, claims.Username, claims.Roles),
		)

		c.Next()
	}
}
