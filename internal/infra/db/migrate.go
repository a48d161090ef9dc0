package db

import (
	"database/sql"
	"fmt"
)

// Dialect selects the DDL flavor for migrations.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// postgresDDL creates the schema on PostgreSQL. The ON DELETE CASCADE on
// comments.article_id is the dependent-lifecycle rule for comments: deleting
// an article removes its comments at the schema level, never in application
// code.
var postgresDDL = []string{
	`CREATE TABLE IF NOT EXISTS brokers (
    id    SERIAL PRIMARY KEY,
    name  TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    phone TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL DEFAULT '',
    bio   TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS housing (
    id          SERIAL PRIMARY KEY,
    address     TEXT NOT NULL,
    city        TEXT NOT NULL,
    price       TEXT NOT NULL,
    rooms       INTEGER NOT NULL CHECK (rooms >= 1),
    area        INTEGER NOT NULL CHECK (area >= 1),
    description TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS offices (
    id        SERIAL PRIMARY KEY,
    name      TEXT NOT NULL,
    address   TEXT NOT NULL,
    lat       DOUBLE PRECISION NOT NULL,
    lon       DOUBLE PRECISION NOT NULL,
    manager   TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS accounts (
    id       SERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role     TEXT NOT NULL CHECK (role IN ('admin', 'user'))
)`,
	`CREATE TABLE IF NOT EXISTS articles (
    id           SERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    body         TEXT NOT NULL,
    published_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    broker_id    INTEGER REFERENCES brokers(id)
)`,
	`CREATE TABLE IF NOT EXISTS comments (
    id          SERIAL PRIMARY KEY,
    article_id  INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_name TEXT NOT NULL,
    body        TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
	`CREATE INDEX IF NOT EXISTS idx_housing_city ON housing(city)`,
}

// sqliteDDL mirrors the PostgreSQL schema. AUTOINCREMENT is unnecessary:
// INTEGER PRIMARY KEY already aliases the rowid. Cascade enforcement
// additionally requires PRAGMA foreign_keys=ON, set in OpenSQLite.
var sqliteDDL = []string{
	`CREATE TABLE IF NOT EXISTS brokers (
    id    INTEGER PRIMARY KEY,
    name  TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    phone TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL DEFAULT '',
    bio   TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS housing (
    id          INTEGER PRIMARY KEY,
    address     TEXT NOT NULL,
    city        TEXT NOT NULL,
    price       TEXT NOT NULL,
    rooms       INTEGER NOT NULL CHECK (rooms >= 1),
    area        INTEGER NOT NULL CHECK (area >= 1),
    description TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS offices (
    id        INTEGER PRIMARY KEY,
    name      TEXT NOT NULL,
    address   TEXT NOT NULL,
    lat       REAL NOT NULL,
    lon       REAL NOT NULL,
    manager   TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS accounts (
    id       INTEGER PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role     TEXT NOT NULL CHECK (role IN ('admin', 'user'))
)`,
	`CREATE TABLE IF NOT EXISTS articles (
    id           INTEGER PRIMARY KEY,
    title        TEXT NOT NULL,
    body         TEXT NOT NULL,
    published_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    broker_id    INTEGER REFERENCES brokers(id)
)`,
	`CREATE TABLE IF NOT EXISTS comments (
    id          INTEGER PRIMARY KEY,
    article_id  INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_name TEXT NOT NULL,
    body        TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
	`CREATE INDEX IF NOT EXISTS idx_housing_city ON housing(city)`,
}

// MigrateUp creates the schema for the given dialect. Every statement is
// idempotent, so running migrations at each process start is safe.
func MigrateUp(handle *sql.DB, dialect Dialect) error {
	var statements []string
	switch dialect {
	case DialectPostgres:
		statements = postgresDDL
	case DialectSQLite:
		statements = sqliteDDL
	default:
		return fmt.Errorf("MigrateUp: unknown dialect %q", dialect)
	}

	for _, stmt := range statements {
		if _, err := handle.Exec(stmt); err != nil {
			return fmt.Errorf("MigrateUp: %w", err)
		}
	}
	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(handle *sql.DB) error {
	drops := []string{
		`DROP TABLE IF EXISTS comments`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS accounts`,
		`DROP TABLE IF EXISTS offices`,
		`DROP TABLE IF EXISTS housing`,
		`DROP TABLE IF EXISTS brokers`,
	}
	for _, stmt := range drops {
		if _, err := handle.Exec(stmt); err != nil {
			return fmt.Errorf("MigrateDown: %w", err)
		}
	}
	return nil
}
