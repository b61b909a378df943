package jsonl

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dialogen/app"
	"dialogen/domain/core"
	"dialogen/domain/dataset"
	"dialogen/internal/config"
	"dialogen/internal/testkit"
)

func TestSaveRecords_RoundTripThroughMerge(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(config.OutputConfig{Dir: dir, Format: "jsonl"})

	records := testkit.Records(10)
	path, err := writer.SaveRecords(records, "batch1.jsonl", nil)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q outside output dir", path)
	}

	// A second file merges into the same grouping.
	if _, err := writer.SaveRecords(testkit.Records(5), "batch2.jsonl", nil); err != nil {
		t.Fatal(err)
	}

	grouped, err := MergeAndGroup(dir)
	if err != nil {
		t.Fatal(err)
	}
	if grouped.Total() != 15 {
		t.Errorf("merged %d conversations, want 15", grouped.Total())
	}
	for _, cat := range grouped.Categories() {
		for _, conv := range grouped.Get(cat) {
			if len(conv) == 0 {
				t.Fatalf("category %q holds an empty conversation", cat)
			}
		}
	}
}

func TestSaveRecords_ReportSibling(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(config.OutputConfig{Dir: dir, Format: "jsonl"})

	path, err := writer.SaveRecords(testkit.Records(3), "batch.jsonl", nil)
	if err != nil {
		t.Fatal(err)
	}
	// No report requested, none written.
	reportPath := strings.TrimSuffix(path, ".jsonl") + ".report.json"
	if _, err := os.Stat(reportPath); !os.IsNotExist(err) {
		t.Errorf("unexpected report file: %v", err)
	}

	records := testkit.Records(3)
	report := app.BuildReport(records, config.GenerationConfig{}, config.LLMConfig{Model: "gpt-4.1"})
	path, err = writer.SaveRecords(records, "batch2.jsonl", report)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(strings.TrimSuffix(path, ".jsonl") + ".report.json")
	if err != nil {
		t.Fatalf("report sibling missing: %v", err)
	}
	var decoded app.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Summary.TotalConversations != 3 || decoded.Summary.Config.Model != "gpt-4.1" {
		t.Errorf("report %+v", decoded.Summary)
	}
}

func TestSaveSamples_JSONArrayFormat(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(config.OutputConfig{Dir: dir, Format: "json"})

	samples := []dataset.TrainingSample{
		{Instruction: "指令", Input: "user: 你好", Output: "<end-of-turn>"},
		{Instruction: "指令", Input: "assistant: 您好", Output: "<continue-turn>"},
	}
	path, err := writer.SaveSamples(samples, "train.json")
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []dataset.TrainingSample
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("not a json array: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Output != "<end-of-turn>" {
		t.Errorf("decoded %+v", decoded)
	}
	// Chinese text is stored unescaped for human inspection.
	if !strings.Contains(string(data), "你好") {
		t.Error("content escaped to \\u sequences")
	}
}

func TestSaveSamples_ArrayRegardlessOfDatasetFormat(t *testing.T) {
	dir := t.TempDir()
	// The dataset format switch must not leak into training files.
	writer := NewWriter(config.OutputConfig{Dir: dir, Format: "jsonl"})

	samples := []dataset.TrainingSample{
		{Instruction: "指令", Input: "user: 你好", Output: "<end-of-turn>"},
		{Instruction: "指令", Input: "assistant: 请稍等", Output: "<continue-speak>"},
	}
	path, err := writer.SaveSamples(samples, "")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(path) != ".json" {
		t.Errorf("train file %q not .json", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []dataset.TrainingSample
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("train file is not a json array: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Output != "<continue-speak>" {
		t.Errorf("decoded %+v", decoded)
	}
	// Labels stay literal on disk, not < escapes.
	if !strings.Contains(string(data), "<end-of-turn>") {
		t.Error("label angle brackets were html-escaped")
	}
}

func TestSaveRecords_RejectsUnknownFormat(t *testing.T) {
	writer := NewWriter(config.OutputConfig{Dir: t.TempDir(), Format: "xml"})
	_, err := writer.SaveRecords(testkit.Records(1), "bad.xml", nil)
	if !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestMergeAndGroup_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := `{"conversation": [{"role": "user", "content": "你好"}], "scenario": {"scenario_type": "客服咨询"}}
not json at all
{"conversation": [{"role": "user", "content": "在吗"}], "scenario": {"scenario_type": "客服咨询"}}
`
	if err := os.WriteFile(filepath.Join(dir, "data.jsonl"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	grouped, err := MergeAndGroup(dir)
	if err != nil {
		t.Fatal(err)
	}
	if grouped.Total() != 2 {
		t.Errorf("merged %d conversations, want 2", grouped.Total())
	}
}

func TestMergeAndGroup_EmptyDir(t *testing.T) {
	grouped, err := MergeAndGroup(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if grouped.Total() != 0 {
		t.Errorf("total %d", grouped.Total())
	}
}
