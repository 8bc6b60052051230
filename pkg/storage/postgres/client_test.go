package postgres_test

import (
	"testing"

	"github.com/Vladislav-tech/cryptolive/pkg/storage/postgres"
)

// go test -v --run ^TestPostgresInvalidDSN$
func TestPostgresInvalidDSN(t *testing.T) {
	invalidDSN := "host=invalid port=5432 user=fail password=fail dbname=fail sslmode=disable"

	_, err := postgres.NewClient(invalidDSN)
	if err == nil {
		t.Fatal("expected error for invalid DSN, got nil")
	}
}

func TestFavoriteRecordTableName(t *testing.T) {
	if got := (postgres.FavoriteRecord{}).TableName(); got != "favorite_record" {
		t.Errorf("unexpected table name %q", got)
	}
}
