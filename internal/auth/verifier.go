// Package auth resolves bearer tokens to principals.
//
// This is deliberately minimal: a static token table (plain or bcrypt-hashed
// entries) plus optional HS256 JWTs. It is not an identity system.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"jobsapi/internal/domain"
	"jobsapi/internal/utils"
)

var ErrInvalidToken = errors.New("invalid token")

type staticToken struct {
	secret []byte
	hashed bool
	role   domain.Role
}

// Verifier maps bearer tokens to principals.
type Verifier struct {
	tokens    []staticToken
	jwtSecret []byte
	now       func() time.Time
}

// NewVerifier parses a "token:role,..." table. Entries whose token looks like a
// bcrypt hash are matched with bcrypt. An empty jwtSecret disables JWTs.
func NewVerifier(table string, jwtSecret string) (*Verifier, error) {
	v := &Verifier{now: time.Now}
	if s := strings.TrimSpace(jwtSecret); s != "" {
		v.jwtSecret = []byte(s)
	}

	for _, pair := range utils.SplitPairs(table) {
		role, ok := domain.ParseRole(pair[1])
		if !ok {
			return nil, fmt.Errorf("auth token table: unknown role %q", pair[1])
		}
		v.tokens = append(v.tokens, staticToken{
			secret: []byte(pair[0]),
			hashed: isBcryptHash(pair[0]),
			role:   role,
		})
	}
	return v, nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Verify resolves a raw bearer token.
func (v *Verifier) Verify(token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, ErrInvalidToken
	}

	for _, t := range v.tokens {
		if t.hashed {
			if bcrypt.CompareHashAndPassword(t.secret, []byte(token)) == nil {
				return domain.Principal{Role: t.role}, nil
			}
			continue
		}
		if subtle.ConstantTimeCompare(t.secret, []byte(token)) == 1 {
			return domain.Principal{Role: t.role}, nil
		}
	}

	if v.jwtSecret != nil && strings.Count(token, ".") == 2 {
		return v.verifyJWT(token)
	}
	return domain.Principal{}, ErrInvalidToken
}

type roleClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (v *Verifier) verifyJWT(token string) (domain.Principal, error) {
	var claims roleClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return domain.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return domain.Principal{Subject: claims.Subject, Role: role}, nil
}

// IssueJWT signs an HS256 token for role valid for ttl. Used by operators and tests.
func (v *Verifier) IssueJWT(subject string, role domain.Role, ttl time.Duration) (string, error) {
	if v.jwtSecret == nil {
		return "", errors.New("jwt secret not configured")
	}
	now := v.now()
	claims := roleClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.jwtSecret)
}
