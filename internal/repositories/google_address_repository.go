package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/elbarryamine/atikia-plugin-server/internal/models"
)

type GoogleAddressRepository interface {
	// FindByCoordinates matches the exact (latitude, longitude) string
	// pair. Returns (nil, nil) when no row exists.
	FindByCoordinates(ctx context.Context, latitude, longitude string) (*models.GoogleAddress, error)
	Create(ctx context.Context, a *models.GoogleAddress) error
}

type googleAddressRepo struct{ db DB }

func NewGoogleAddressRepository(db DB) GoogleAddressRepository {
	return &googleAddressRepo{db: db}
}

func (r *googleAddressRepo) FindByCoordinates(ctx context.Context, latitude, longitude string) (*models.GoogleAddress, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, latitude, longitude, google_address_json, created_at, updated_at
        FROM google_addresses
        WHERE latitude=$1 AND longitude=$2
        LIMIT 1
    `, latitude, longitude)

	var a models.GoogleAddress
	var raw []byte
	err := row.Scan(&a.ID, &a.Latitude, &a.Longitude, &raw, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &a.AddressJSON); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *googleAddressRepo) Create(ctx context.Context, a *models.GoogleAddress) error {
	raw, err := json.Marshal(a.AddressJSON)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO google_addresses (id, latitude, longitude, google_address_json, created_at, updated_at)
        VALUES ($1,$2,$3,$4, NOW(), NOW())
    `, a.ID, a.Latitude, a.Longitude, raw)
	return err
}
