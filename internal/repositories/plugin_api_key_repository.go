package repositories

import (
	"context"

	"github.com/elbarryamine/atikia-plugin-server/internal/models"
)

type PluginAPIKeyRepository interface {
	// GetByKey returns pgx.ErrNoRows when no credential matches.
	GetByKey(ctx context.Context, apiKey string) (*models.PluginAPIKey, error)
}

type pluginAPIKeyRepo struct{ db DB }

func NewPluginAPIKeyRepository(db DB) PluginAPIKeyRepository {
	return &pluginAPIKeyRepo{db: db}
}

func (r *pluginAPIKeyRepo) GetByKey(ctx context.Context, apiKey string) (*models.PluginAPIKey, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, api_key, user_id, created_at
        FROM plugin_api_keys
        WHERE api_key=$1
    `, apiKey)

	var k models.PluginAPIKey
	if err := row.Scan(&k.ID, &k.APIKey, &k.UserID, &k.CreatedAt); err != nil {
		return nil, err
	}
	return &k, nil
}
