package models

import "time"

// Permission bits carried in the JWT permissions claim
const (
	PermEditTiles int64 = 1 << iota
	PermAdmin
)

// Player is the identity behind a query connection
type Player struct {
	// From JWT claims
	ID          string `json:"id"`          // Converted from int64 user_id, or a UUID for guests
	Username    string `json:"username"`    // JWT claim
	Email       string `json:"email"`       // JWT claim
	Permissions int64  `json:"permissions"` // JWT claim: bitwise permission flags
	Activated   int64  `json:"activated"`   // JWT claim: activation timestamp or ban status
	AuthMethod  string `json:"auth_method"` // JWT claim: "password", "oauth" or "guest"

	// Connection state
	Connected   bool      `json:"connected"`
	ConnectedAt time.Time `json:"connected_at"`
	SessionID   string    `json:"session_id"`
}

// IsActive checks if the player account is activated and not banned
func (p *Player) IsActive() bool {
	// activated > 0 means activated
	// activated == 0 means not activated
	// activated == -1 means banned
	return p.Activated > 0
}

// IsBanned checks if the player is banned
func (p *Player) IsBanned() bool {
	return p.Activated == -1
}

// IsGuest reports whether the player joined without a token
func (p *Player) IsGuest() bool {
	return p.AuthMethod == "guest"
}

// Can reports whether every bit of perm is granted
func (p *Player) Can(perm int64) bool {
	return p.Permissions&perm == perm
}
