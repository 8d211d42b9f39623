package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the record of the current authenticated identity. The zero value
// is the unauthenticated state. JSON tags define the persisted slot layout.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken"`
	Protocol        string `json:"protocol"`
	ProtocolID      string `json:"protocolId"`
	PartnerID       string `json:"pId"`
	UserName        string `json:"userName"`
	UserEmail       string `json:"userEmail"`
}

// Credentials is the set of fields every authenticated request must carry.
type Credentials struct {
	AccessToken string
	Protocol    string
	ProtocolID  string
	PartnerID   string
}

// HasCredentials reports whether all four fields required on authenticated
// requests are present. IsAuthenticated must hold exactly when this does.
func (s Session) HasCredentials() bool {
	return s.AccessToken != "" && s.Protocol != "" && s.ProtocolID != "" && s.PartnerID != ""
}

func (s Session) Credentials() Credentials {
	return Credentials{
		AccessToken: s.AccessToken,
		Protocol:    s.Protocol,
		ProtocolID:  s.ProtocolID,
		PartnerID:   s.PartnerID,
	}
}

// SessionFromLogin builds the authenticated session for a login payload.
func SessionFromLogin(res *LoginResult) Session {
	return Session{
		IsAuthenticated: true,
		AccessToken:     res.Token.AccessToken,
		RefreshToken:    res.Token.RefreshToken,
		Protocol:        res.Protocol.Protocol,
		ProtocolID:      res.Protocol.ProtocolID,
		PartnerID:       res.Protocol.PID,
		UserName:        res.User.Name,
		UserEmail:       res.User.Email,
	}
}

// TokenExpiresAt peeks the exp claim of the access token without verifying
// the signature. Display only: there is no refresh flow, an expired token
// simply makes the next call fail. Returns false when the token is absent,
// not a JWT, or carries no exp claim.
func (s Session) TokenExpiresAt() (time.Time, bool) {
	if s.AccessToken == "" {
		return time.Time{}, false
	}
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
