package store

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Schema names the table set owned by one service.
type Schema string

const (
	OrdersSchema        Schema = "orders"
	UsersSchema         Schema = "users"
	NotificationsSchema Schema = "notifications"
)

//go:embed migrations
var migrations embed.FS

// Migrate applies the embedded migrations for schema. Each schema keeps its
// own version table so services can share a database in development.
func Migrate(dsn string, schema Schema) error {
	src, err := iofs.New(migrations, path.Join("migrations", string(schema)))
	if err != nil {
		return fmt.Errorf("migrations source %s: %w", schema, err)
	}

	dbURL, err := migrateURL(dsn, schema)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up %s: %w", schema, err)
	}
	return nil
}

func migrateURL(dsn string, schema Schema) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		u.Scheme = "pgx5"
	case "pgx5":
	default:
		return "", fmt.Errorf("unsupported dsn scheme %q", u.Scheme)
	}

	q := u.Query()
	q.Set("x-migrations-table", string(schema)+"_schema_migrations")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
