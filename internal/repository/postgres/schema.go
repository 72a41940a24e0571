package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// schema is applied on startup. Every statement is idempotent.
// applications.user_id and saved_jobs.user_id carry no foreign key: the API
// accepts any positive user id.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password      TEXT NOT NULL,
	full_name     TEXT NOT NULL,
	profile_image TEXT,
	is_employer   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS companies (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL,
	industry     TEXT NOT NULL,
	location     TEXT NOT NULL,
	size         TEXT NOT NULL,
	logo         TEXT NOT NULL,
	website      TEXT,
	technologies TEXT[] NOT NULL DEFAULT '{}',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobs (
	id                BIGSERIAL PRIMARY KEY,
	title             TEXT NOT NULL,
	description       TEXT NOT NULL,
	company_id        BIGINT NOT NULL REFERENCES companies(id),
	category          TEXT NOT NULL,
	type              TEXT NOT NULL,
	experience_level  TEXT NOT NULL,
	location          TEXT NOT NULL,
	remote_type       TEXT NOT NULL,
	salary_min        INTEGER,
	salary_max        INTEGER,
	currency          TEXT NOT NULL DEFAULT 'USD',
	skills            TEXT[] NOT NULL DEFAULT '{}',
	featured          BOOLEAN NOT NULL DEFAULT FALSE,
	urgent            BOOLEAN NOT NULL DEFAULT FALSE,
	application_count INTEGER NOT NULL DEFAULT 0,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS applications (
	id           BIGSERIAL PRIMARY KEY,
	user_id      BIGINT NOT NULL,
	job_id       BIGINT NOT NULL REFERENCES jobs(id),
	status       TEXT NOT NULL DEFAULT 'pending',
	cover_letter TEXT,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, job_id)
);

CREATE TABLE IF NOT EXISTS saved_jobs (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL,
	job_id     BIGINT NOT NULL REFERENCES jobs(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, job_id)
);

CREATE TABLE IF NOT EXISTS job_categories (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	icon  TEXT NOT NULL,
	count INTEGER NOT NULL DEFAULT 0,
	color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
	id         BIGSERIAL PRIMARY KEY,
	email      TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate creates the tables the repositories rely on.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// IsEmpty reports whether no company has been stored yet, which is the
// signal for loading the seed catalog.
func IsEmpty(ctx context.Context, db *pgxpool.Pool) (bool, error) {
	var exists bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies)`).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

// translateError maps driver errors onto the domain sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrNotFound)
		}
	}
	return err
}

// scanner is implemented by pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
