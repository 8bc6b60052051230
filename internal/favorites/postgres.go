package favorites

import (
	"context"
	"time"

	"github.com/Vladislav-tech/cryptolive/pkg/storage/postgres"
)

// PostgresBackend persists the favorite set durably. Ordering and
// deduplication are enforced by the schema (unique symbol index, list by
// creation time descending).
type PostgresBackend struct {
	client  *postgres.Client
	timeout time.Duration
}

func NewPostgresBackend(client *postgres.Client) *PostgresBackend {
	return &PostgresBackend{
		client:  client,
		timeout: 2 * time.Second,
	}
}

func (b *PostgresBackend) List() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	return b.client.ListFavorites(ctx)
}

func (b *PostgresBackend) Add(symbol string) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	return b.client.InsertFavorite(ctx, symbol)
}

func (b *PostgresBackend) Remove(symbol string) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	return b.client.DeleteFavorite(ctx, symbol)
}
