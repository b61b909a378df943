package app

import (
	"testing"

	"dialogen/internal/config"
	"dialogen/internal/testkit"
)

func TestBuildReport_Statistics(t *testing.T) {
	records := testkit.Records(10)
	genCfg := config.GenerationConfig{
		PersonaPresets: []string{"basic_chinese_customer"},
		ScenarioTypes:  []string{"客服咨询"},
	}
	llmCfg := config.LLMConfig{Model: "gpt-4.1", Temperature: 0.7}

	report := BuildReport(records, genCfg, llmCfg)

	if report.Summary.TotalConversations != 10 {
		t.Errorf("total %d", report.Summary.TotalConversations)
	}
	if report.Summary.Config.Model != "gpt-4.1" {
		t.Errorf("model %q", report.Summary.Config.Model)
	}

	length := report.Statistics.ConversationLength
	if length.Min < 4 || length.Max > 8 || length.Average < length.Min || length.Average > length.Max {
		t.Errorf("length stats %+v", length)
	}

	total := 0
	for _, n := range report.Statistics.Scenarios {
		total += n
	}
	if total != 10 {
		t.Errorf("scenario distribution covers %d records", total)
	}
	// Fixture profiles always resolve an occupation.
	if len(report.Statistics.Occupations) == 0 {
		t.Error("occupation distribution empty")
	}
}

func TestBuildReport_Empty(t *testing.T) {
	report := BuildReport(nil, config.GenerationConfig{}, config.LLMConfig{})
	if report.Summary.TotalConversations != 0 {
		t.Errorf("total %d", report.Summary.TotalConversations)
	}
	if report.Statistics.ConversationLength.Average != 0 {
		t.Errorf("length stats %+v", report.Statistics.ConversationLength)
	}
}
