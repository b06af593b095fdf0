package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/elbarryamine/atikia-plugin-server/internal/dtos"
	"github.com/elbarryamine/atikia-plugin-server/internal/repositories"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the authenticated caller's profile.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dtos.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Message: "User not found", Err: err}
	}
	if err != nil {
		return nil, err
	}

	return &dtos.UserProfileResponse{
		ID:                user.ID,
		ContactEmail:      user.ContactEmail,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Role:              user.Role,
		ProfilePictureURL: user.ProfilePictureURL,
	}, nil
}
