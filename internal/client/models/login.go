package models

// LoginResult mirrors the login mutation payload. The field set matches the
// backend selection exactly; most protocol fields are opaque to us but are
// kept so the payload round-trips without loss.
type LoginResult struct {
	Token    Token         `json:"token"`
	Protocol AuthProtocol  `json:"protocol"`
	User     UserReference `json:"user"`
}

type Token struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthProtocol struct {
	Protocol            string  `json:"protocol"`
	ProtocolID          string  `json:"protocolId"`
	UserBusinessPartner string  `json:"userBusinessPartner"`
	Type                string  `json:"type"`
	Document            string  `json:"document"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Name                string  `json:"name"`
	Segment             string  `json:"segment"`
	Ficticious          bool    `json:"ficticious"`
	BirthDate           string  `json:"birthDate"`
	DeathDate           *string `json:"deathDate"`
	PID                 string  `json:"pId"`
}

type UserReference struct {
	Document        string  `json:"document"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ProfilePhoto    *string `json:"profilePhoto"`
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	DocumentIsValid bool    `json:"documentIsValid"`
}
