package postgres

import (
	"context"
	"fmt"
)

// schema tablas del backend simulado. seq conserva el orden de inserción.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	seq         BIGSERIAL,
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	stock       INTEGER NOT NULL CHECK (stock >= 0),
	unit        TEXT NOT NULL,
	price       NUMERIC(14,2) NOT NULL CHECK (price >= 0),
	min_stock   INTEGER NOT NULL CHECK (min_stock >= 0),
	supplier    TEXT NOT NULL DEFAULT '',
	description TEXT
);
CREATE TABLE IF NOT EXISTS sales (
	seq            BIGSERIAL,
	id             TEXT PRIMARY KEY,
	date           TEXT NOT NULL,
	customer       TEXT NOT NULL,
	total          NUMERIC(14,2) NOT NULL,
	payment_method TEXT NOT NULL,
	items          JSONB NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS purchases (
	seq      BIGSERIAL,
	id       TEXT PRIMARY KEY,
	date     TEXT NOT NULL,
	supplier TEXT NOT NULL,
	total    NUMERIC(14,2) NOT NULL,
	status   TEXT NOT NULL,
	items    JSONB NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL,
	role          TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	password_hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS kv_store (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
