package dataset

import (
	"strings"
	"testing"

	"dialogen/domain/conversation"
	"dialogen/domain/scenario"
)

func scenarioRecord(category string) scenario.Record {
	return scenario.Record{ScenarioName: category + "场景", ScenarioType: category}
}

func TestTurnEndInstruction_RolePhrasing(t *testing.T) {
	user := TurnEndInstruction(conversation.RoleUser)
	if !strings.Contains(user, "用户的最后一句话") || strings.Contains(user, "助手") {
		t.Errorf("user instruction wrong: %s", user)
	}
	assistant := TurnEndInstruction(conversation.RoleAssistant)
	if !strings.Contains(assistant, "助手的最后一句话") {
		t.Errorf("assistant instruction wrong: %s", assistant)
	}
	for _, instr := range []string{user, assistant} {
		if !strings.Contains(instr, "<end-of-turn>") || !strings.Contains(instr, "<continue-turn>") {
			t.Errorf("instruction missing label mentions: %s", instr)
		}
	}
}

func TestOverlapInstruction_MentionsBothLabels(t *testing.T) {
	if !strings.Contains(OverlapInstruction, "<interrupt>") || !strings.Contains(OverlapInstruction, "<continue-speak>") {
		t.Errorf("overlap instruction missing label mentions: %s", OverlapInstruction)
	}
}

func TestLabels_MiningOrder(t *testing.T) {
	labels := Labels()
	want := []Label{LabelEndOfTurn, LabelContinueTurn, LabelInterrupt, LabelContinueSpeak}
	if len(labels) != len(want) {
		t.Fatalf("labels %v", labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %s, want %s", i, labels[i], want[i])
		}
	}
}

func TestPublished_DropsBookkeeping(t *testing.T) {
	s := LabeledSample{
		Instruction: "指令",
		Input:       "user: 你好",
		Output:      LabelEndOfTurn,
		Scenario:    "客服咨询",
		Type:        SubjectUserTurn,
	}
	p := s.Published()
	if p.Instruction != "指令" || p.Input != "user: 你好" || p.Output != "<end-of-turn>" {
		t.Errorf("projection %+v", p)
	}
}

func TestGroup_ByScenarioType(t *testing.T) {
	conv := conversation.Conversation{{Role: conversation.RoleUser, Content: "你好"}}
	records := []ConversationRecord{
		{Conversation: conv, Scenario: scenarioRecord("客服咨询")},
		{Conversation: conv, Scenario: scenarioRecord("技术支持")},
		{Conversation: conv, Scenario: scenarioRecord("客服咨询")},
		{Conversation: conv},
	}

	grouped := Group(records)
	cats := grouped.Categories()
	if len(cats) != 3 || cats[0] != "客服咨询" || cats[1] != "技术支持" || cats[2] != "unknown" {
		t.Errorf("categories %v", cats)
	}
	if len(grouped.Get("客服咨询")) != 2 {
		t.Errorf("客服咨询 bucket %d", len(grouped.Get("客服咨询")))
	}
	// A record with no scenario lands in the catch-all bucket.
	if len(grouped.Get("unknown")) != 1 {
		t.Errorf("unknown bucket %d", len(grouped.Get("unknown")))
	}
}
