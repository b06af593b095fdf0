package dtos

import "github.com/google/uuid"

// UserProfileResponse is the 200 body of GET /me.
type UserProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	ContactEmail      string    `json:"contactEmail"`
	FirstName         *string   `json:"firstName"`
	LastName          *string   `json:"lastName"`
	Role              string    `json:"role"`
	ProfilePictureURL *string   `json:"profilePictureUrl"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
