package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopease/console-gateway/internal/core/domain"
)

// TokenDecoder extracts claims from an access token without verifying its
// signature. The backend verifies the signature on every authenticated
// request; the gateway only needs the claims to make navigation decisions.
// Decoding is pure and fails closed: any structural problem yields
// domain.ErrTokenMalformed, never a panic or a partially-trusted result.
type TokenDecoder struct {
	parser *jwt.Parser
}

func NewTokenDecoder() *TokenDecoder {
	return &TokenDecoder{parser: jwt.NewParser()}
}

// Decode parses tokenString into domain claims. Claims must carry at minimum
// a role and an expiry; subject fields pass through when present.
func (d *TokenDecoder) Decode(tokenString string) (domain.Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return domain.Claims{}, domain.ErrTokenMalformed
	}

	raw := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(tokenString, raw); err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
	}

	role, _ := raw["role"].(string)
	if role == "" {
		return domain.Claims{}, fmt.Errorf("%w: missing role claim", domain.ErrTokenMalformed)
	}

	exp, err := raw.GetExpirationTime()
	if err != nil || exp == nil {
		return domain.Claims{}, fmt.Errorf("%w: missing exp claim", domain.ErrTokenMalformed)
	}

	claims := domain.Claims{
		Role:      role,
		ExpiresAt: exp.Time.UTC(),
	}
	if sub, err := raw.GetSubject(); err == nil {
		claims.Subject = sub
	}
	claims.UserID, _ = raw["uid"].(string)
	claims.VendorID, _ = raw["vendor_id"].(string)

	return claims, nil
}

// DecodeValid decodes tokenString and additionally checks expiry against now.
// An exp equal to now counts as expired.
func (d *TokenDecoder) DecodeValid(tokenString string, now time.Time) (domain.Claims, error) {
	claims, err := d.Decode(tokenString)
	if err != nil {
		return domain.Claims{}, err
	}
	if claims.Expired(now) {
		return domain.Claims{}, domain.ErrTokenExpired
	}
	return claims, nil
}
