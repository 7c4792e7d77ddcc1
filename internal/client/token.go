package client

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// EncodeDemoToken renders claims the way the dashboard stores demo sessions:
// standard base64 of the JSON object.
func EncodeDemoToken(claims domain.DemoClaims) (string, error) {
	raw, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("encode demo token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeDemoToken is the inverse of EncodeDemoToken.
func DecodeDemoToken(token string) (domain.DemoClaims, error) {
	var claims domain.DemoClaims

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return claims, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return claims, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}
	if claims.Username == "" {
		return claims, fmt.Errorf("%w: demo token without username", domain.ErrMalformedToken)
	}
	return claims, nil
}

// InspectToken reads what a stored token says about its owner. Backend JWTs
// are parsed without signature verification: only the backend can vouch for
// them, and the client merely reports their claims.
func InspectToken(token string, now time.Time) (*domain.SessionInfo, error) {
	if demo, err := DecodeDemoToken(token); err == nil {
		exp := time.UnixMilli(demo.Exp)
		return &domain.SessionInfo{
			Username:  demo.Username,
			Role:      demo.Role,
			ExpiresAt: exp,
			Demo:      true,
			Expired:   !now.Before(exp),
		}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}

	info := &domain.SessionInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Username = sub
	}
	if info.Username == "" {
		info.Username, _ = claims["username"].(string)
	}
	info.Role, _ = claims["role"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}
	if exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = !now.Before(exp.Time)
	}
	return info, nil
}
