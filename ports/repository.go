package ports

import (
	"context"

	"dialogen/domain/core"
	"dialogen/domain/dataset"
)

// RecordRepository persists generated conversation records.
type RecordRepository interface {
	SaveRecords(ctx context.Context, runID core.RunID, records []dataset.ConversationRecord) error
	ListByScenario(ctx context.Context, scenarioType string) ([]dataset.ConversationRecord, error)
}

// SampleRepository persists mined training samples.
type SampleRepository interface {
	SaveSamples(ctx context.Context, runID core.RunID, samples []dataset.TrainingSample) error
}
