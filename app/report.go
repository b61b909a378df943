package app

import (
	"time"

	"github.com/montanaflynn/stats"

	"dialogen/domain/dataset"
	"dialogen/internal/config"
)

// Report summarizes one saved dataset. Written alongside the dataset file so
// a batch can be judged without reloading it.
type Report struct {
	Summary    ReportSummary    `json:"summary"`
	Statistics ReportStatistics `json:"statistics"`
}

type ReportSummary struct {
	TotalConversations int          `json:"total_conversations"`
	GeneratedAt        time.Time    `json:"generated_at"`
	Config             ReportConfig `json:"config"`
}

type ReportConfig struct {
	Model          string   `json:"model"`
	Temperature    float64  `json:"temperature"`
	PersonaPresets []string `json:"persona_presets"`
	ScenarioTypes  []string `json:"scenario_types"`
}

type ReportStatistics struct {
	ConversationLength LengthStats    `json:"conversation_length"`
	Occupations        map[string]int `json:"occupation_distribution"`
	Scenarios          map[string]int `json:"scenario_distribution"`
	PersonaPresets     map[string]int `json:"persona_preset_distribution"`
}

type LengthStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// BuildReport computes the summary statistics for a batch of records.
func BuildReport(records []dataset.ConversationRecord, genCfg config.GenerationConfig, llmCfg config.LLMConfig) *Report {
	report := &Report{
		Summary: ReportSummary{
			TotalConversations: len(records),
			GeneratedAt:        time.Now(),
			Config: ReportConfig{
				Model:          llmCfg.Model,
				Temperature:    llmCfg.Temperature,
				PersonaPresets: genCfg.PersonaPresets,
				ScenarioTypes:  genCfg.ScenarioTypes,
			},
		},
		Statistics: ReportStatistics{
			Occupations:    make(map[string]int),
			Scenarios:      make(map[string]int),
			PersonaPresets: make(map[string]int),
		},
	}

	lengths := make(stats.Float64Data, 0, len(records))
	for i := range records {
		record := &records[i]
		lengths = append(lengths, float64(len(record.Conversation)))

		if occupation := record.Persona.Profile["职业"]; occupation != "" {
			report.Statistics.Occupations[occupation]++
		}
		if record.Scenario.ScenarioType != "" {
			report.Statistics.Scenarios[record.Scenario.ScenarioType]++
		}
		if record.Metadata != nil && record.Metadata.PersonaPreset != "" {
			report.Statistics.PersonaPresets[record.Metadata.PersonaPreset]++
		}
	}

	if len(lengths) > 0 {
		// stats errors only on empty input, guarded above
		avg, _ := stats.Mean(lengths)
		min, _ := stats.Min(lengths)
		max, _ := stats.Max(lengths)
		report.Statistics.ConversationLength = LengthStats{Average: avg, Min: min, Max: max}
	}
	return report
}
