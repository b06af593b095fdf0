package models

import (
	"time"

	"github.com/google/uuid"
)

// PluginAPIKey maps a long-lived bearer credential to its owning user.
// Keys have no expiry; revocation is a row delete by the main backend.
type PluginAPIKey struct {
	ID        uuid.UUID `json:"id"`
	APIKey    string    `json:"api_key"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
