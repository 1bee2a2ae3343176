package domain

import "time"

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"` // Never return password in JSON
	Name     string `json:"name"`

	// Meeting-intelligence provider connection. The API key (or OAuth token
	// pair) is stored encrypted; ConnectedAt doubles as the "has ever
	// connected" flag that gates scheduled syncs.
	ProviderAPIKey       string     `json:"-"`
	ProviderAccessToken  string     `json:"-"`
	ProviderRefreshToken string     `json:"-"`
	ProviderConnectedAt  *time.Time `json:"provider_connected_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderConnected reports whether the user has linked a provider workspace
func (u *User) ProviderConnected() bool {
	return u.ProviderConnectedAt != nil
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
