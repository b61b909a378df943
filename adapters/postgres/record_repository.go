package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"dialogen/domain/core"
	"dialogen/domain/dataset"
	"dialogen/ports"
)

// recordRepository implements the RecordRepository interface
type recordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a new conversation record repository
func NewRecordRepository(db *sqlx.DB) ports.RecordRepository {
	return &recordRepository{db: db}
}

// SaveRecords inserts a batch of conversation records in one transaction
func (r *recordRepository) SaveRecords(ctx context.Context, runID core.RunID, records []dataset.ConversationRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO conversation_records (run_id, scenario_type, record) VALUES ($1, $2, $3)`
	for i := range records {
		payload, err := json.Marshal(&records[i])
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, string(runID), records[i].ScenarioType(), payload); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// ListByScenario retrieves all records for one scenario category
func (r *recordRepository) ListByScenario(ctx context.Context, scenarioType string) ([]dataset.ConversationRecord, error) {
	query := `SELECT record FROM conversation_records WHERE scenario_type = $1 ORDER BY id`

	var payloads [][]byte
	if err := r.db.SelectContext(ctx, &payloads, query, scenarioType); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]dataset.ConversationRecord, 0, len(payloads))
	for _, payload := range payloads {
		var record dataset.ConversationRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// sampleRepository implements the SampleRepository interface
type sampleRepository struct {
	db *sqlx.DB
}

// NewSampleRepository creates a new training sample repository
func NewSampleRepository(db *sqlx.DB) ports.SampleRepository {
	return &sampleRepository{db: db}
}

// SaveSamples inserts a batch of training samples in one transaction
func (r *sampleRepository) SaveSamples(ctx context.Context, runID core.RunID, samples []dataset.TrainingSample) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO training_samples (run_id, instruction, input, output) VALUES ($1, $2, $3, $4)`
	for _, s := range samples {
		if _, err := tx.ExecContext(ctx, query, string(runID), s.Instruction, s.Input, s.Output); err != nil {
			return fmt.Errorf("failed to insert sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit samples: %w", err)
	}
	return nil
}
