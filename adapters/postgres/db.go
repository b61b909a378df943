package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"dialogen/internal/errors"
)

// Connect opens a Postgres connection pool and verifies it.
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.WithCode(err, errors.CodeStorage, "connect to database")
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS conversation_records (
	id            BIGSERIAL PRIMARY KEY,
	run_id        TEXT NOT NULL,
	scenario_type TEXT NOT NULL,
	record        JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_conversation_records_run ON conversation_records (run_id);
CREATE INDEX IF NOT EXISTS idx_conversation_records_scenario ON conversation_records (scenario_type);

CREATE TABLE IF NOT EXISTS training_samples (
	id          BIGSERIAL PRIMARY KEY,
	run_id      TEXT NOT NULL,
	instruction TEXT NOT NULL,
	input       TEXT NOT NULL,
	output      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_training_samples_run ON training_samples (run_id);
CREATE INDEX IF NOT EXISTS idx_training_samples_output ON training_samples (output);
`

// EnsureSchema creates the dataset tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.WithCode(err, errors.CodeStorage, "apply schema")
	}
	return nil
}
