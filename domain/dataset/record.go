package dataset

import (
	"time"

	"dialogen/domain/conversation"
	"dialogen/domain/persona"
	"dialogen/domain/scenario"
)

// Metadata captures how one conversation record was produced.
type Metadata struct {
	GeneratedAt    time.Time `json:"generated_at"`
	GenerationTime float64   `json:"generation_time"`
	Model          string    `json:"model"`
	Temperature    float64   `json:"temperature"`
	PersonaPreset  string    `json:"persona_preset"`
	ScenarioType   string    `json:"scenario_type"`
}

// ConversationRecord is one generated conversation with its provenance, the
// unit persisted to dataset files and the miner's input.
type ConversationRecord struct {
	Conversation conversation.Conversation `json:"conversation"`
	Persona      persona.Record            `json:"persona"`
	Scenario     scenario.Record           `json:"scenario"`
	Metadata     *Metadata                 `json:"metadata,omitempty"`
}

// ScenarioType returns the record's scenario category, or "unknown" when the
// record carries none.
func (r *ConversationRecord) ScenarioType() string {
	if r.Scenario.ScenarioType == "" {
		return "unknown"
	}
	return r.Scenario.ScenarioType
}

// Group buckets records' conversations by scenario category, in first-seen
// order.
func Group(records []ConversationRecord) *conversation.Grouped {
	grouped := conversation.NewGrouped()
	for i := range records {
		grouped.Add(records[i].ScenarioType(), records[i].Conversation)
	}
	return grouped
}
