package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/elbarryamine/atikia-plugin-server/internal/models"
)

type UserRepository interface {
	// GetByID returns pgx.ErrNoRows when the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userRepo struct{ db DB }

func NewUserRepository(db DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, contact_email, first_name, last_name, role, profile_picture_url
        FROM users
        WHERE id=$1
    `, id)

	var u models.User
	if err := row.Scan(&u.ID, &u.ContactEmail, &u.FirstName, &u.LastName, &u.Role, &u.ProfilePictureURL); err != nil {
		return nil, err
	}
	return &u, nil
}
