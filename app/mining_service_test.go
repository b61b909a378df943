package app

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"dialogen/domain/conversation"
	"dialogen/domain/core"
	"dialogen/domain/dataset"
	"dialogen/internal/rng"
	"dialogen/internal/testkit"
)

func mineFixture(t *testing.T, grouped *conversation.Grouped, perLabel int, seed int64) *MiningResult {
	t.Helper()
	miner := NewMiningService(rng.New())
	result, err := miner.Mine(context.Background(), MiningRequest{
		RunID:           core.RunID("run_test"),
		Grouped:         grouped,
		SamplesPerLabel: perLabel,
		Seed:            seed,
	})
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestMine_Deterministic(t *testing.T) {
	grouped := testkit.Grouped(5, "客服咨询", "技术支持")

	a := mineFixture(t, grouped, 40, 42)
	b := mineFixture(t, grouped, 40, 42)
	if !reflect.DeepEqual(a.Samples, b.Samples) {
		t.Error("identical run id and seed must reproduce identical output")
	}

	c := mineFixture(t, grouped, 40, 43)
	if reflect.DeepEqual(a.Samples, c.Samples) {
		t.Error("different seed must change the output")
	}
}

func TestMine_QuotasAndBalance(t *testing.T) {
	grouped := testkit.Grouped(10, "客服咨询", "技术支持")
	result := mineFixture(t, grouped, 40, 42)

	// 40 per label over 2 categories: 20 per (label, category) cell, fixture
	// conversations are rich enough to fill every quota.
	for _, label := range dataset.Labels() {
		if result.LabelCounts[label] != 40 {
			t.Errorf("label %s count %d, want 40", label, result.LabelCounts[label])
		}
	}
	if len(result.Samples) != 160 {
		t.Errorf("total %d, want 160", len(result.Samples))
	}
}

func TestMine_SamplesAreWellFormed(t *testing.T) {
	grouped := testkit.Grouped(5, "客服咨询")
	result := mineFixture(t, grouped, 20, 42)

	for _, s := range result.Samples {
		if s.Instruction == "" || s.Input == "" {
			t.Fatalf("empty sample %+v", s)
		}
		lines := strings.Split(s.Input, "\n")
		if len(lines) > 2 {
			t.Errorf("context window larger than 2 turns:\n%s", s.Input)
		}
		for _, line := range lines {
			if !strings.HasPrefix(line, "user: ") && !strings.HasPrefix(line, "assistant: ") {
				t.Errorf("unformatted context line %q", line)
			}
		}

		switch dataset.Label(s.Output) {
		case dataset.LabelEndOfTurn, dataset.LabelContinueTurn:
			if !strings.Contains(s.Instruction, "最后一句话") {
				t.Errorf("wrong instruction for %s", s.Output)
			}
		case dataset.LabelInterrupt, dataset.LabelContinueSpeak:
			if s.Instruction != dataset.OverlapInstruction {
				t.Errorf("wrong instruction for %s", s.Output)
			}
			// Overlap windows always end with the user speaking over the
			// assistant.
			if !strings.HasPrefix(lines[len(lines)-1], "user: ") {
				t.Errorf("overlap window must end on a user turn:\n%s", s.Input)
			}
		default:
			t.Errorf("unexpected output label %q", s.Output)
		}
	}
}

func TestMine_TruncationRespectsMinimumLength(t *testing.T) {
	grouped := testkit.Grouped(5, "客服咨询")
	result := mineFixture(t, grouped, 40, 42)

	for _, s := range result.Samples {
		if dataset.Label(s.Output) == dataset.LabelEndOfTurn {
			continue
		}
		lines := strings.Split(s.Input, "\n")
		// For truncation-based labels the synthesized fragment is either the
		// last line (continue-turn) or the second to last (overlap labels).
		var fragment string
		switch dataset.Label(s.Output) {
		case dataset.LabelContinueTurn:
			fragment = lines[len(lines)-1]
		default:
			if len(lines) < 2 {
				continue
			}
			fragment = lines[len(lines)-2]
		}
		content := fragment[strings.Index(fragment, ": ")+2:]
		if len([]rune(content)) < 10 {
			t.Errorf("fragment below minimum length: %q", content)
		}
	}
}

func TestMine_ShortConversationsYieldNothing(t *testing.T) {
	grouped := conversation.NewGrouped()
	grouped.Add("客服咨询", testkit.ShortConversation())

	result := mineFixture(t, grouped, 20, 42)
	for _, label := range []dataset.Label{dataset.LabelContinueTurn, dataset.LabelInterrupt, dataset.LabelContinueSpeak} {
		if result.LabelCounts[label] != 0 {
			t.Errorf("label %s mined %d samples from short turns", label, result.LabelCounts[label])
		}
	}
}

func TestMine_EmptyInput(t *testing.T) {
	result := mineFixture(t, conversation.NewGrouped(), 20, 42)
	if len(result.Samples) != 0 {
		t.Errorf("expected no samples, got %d", len(result.Samples))
	}
}
