package models

import (
	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `json:"id"`
	ContactEmail      string    `json:"contact_email"`
	FirstName         *string   `json:"first_name,omitempty"`
	LastName          *string   `json:"last_name,omitempty"`
	Role              string    `json:"role"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
}
