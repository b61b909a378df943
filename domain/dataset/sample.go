package dataset

import (
	"fmt"

	"dialogen/domain/conversation"
)

// Label is one of the four turn-taking classes a mined sample can carry.
type Label string

const (
	LabelEndOfTurn     Label = "<end-of-turn>"
	LabelContinueTurn  Label = "<continue-turn>"
	LabelInterrupt     Label = "<interrupt>"
	LabelContinueSpeak Label = "<continue-speak>"
)

// Labels lists the four classes in mining order.
func Labels() []Label {
	return []Label{LabelEndOfTurn, LabelContinueTurn, LabelInterrupt, LabelContinueSpeak}
}

// Subject records whose turn a sample judges. Bookkeeping only; dropped from
// the published dataset.
type Subject string

const (
	SubjectUserTurn          Subject = "user_turn"
	SubjectAssistantTurn     Subject = "assistant_turn"
	SubjectAssistantSpeaking Subject = "assistant_speaking"
)

// TurnEndInstruction is the classification instruction for end-of-turn and
// continue-turn samples, phrased for the judged role.
func TurnEndInstruction(role conversation.Role) string {
	subject := "用户"
	if role == conversation.RoleAssistant {
		subject = "助手"
	}
	return fmt.Sprintf(
		"分析以下对话中%s的最后一句话。如果%s的说话轮次已经结束（话已说完），则输出 <end-of-turn>。如果%s明显还没说完（例如，只是一个停顿），则输出 <continue-turn>。不要解释原因。",
		subject, subject, subject)
}

// OverlapInstruction is the classification instruction for interrupt and
// continue-speak samples, where the user speaks over an in-progress assistant
// turn.
const OverlapInstruction = "在助手说话时，用户插话了。判断用户的插话是否构成打断。如果用户意图抢占话语权并提出新话题或指令，则输出 <interrupt>。如果用户只是在附和（例如说\"嗯\"、\"好的\"），则输出 <continue-speak>。不要解释原因。"

// LabeledSample is the internal mined record, carrying scenario and subject
// bookkeeping alongside the publishable fields.
type LabeledSample struct {
	Instruction string  `json:"instruction"`
	Input       string  `json:"input"`
	Output      Label   `json:"output"`
	Scenario    string  `json:"scenario"`
	Type        Subject `json:"type"`
}

// TrainingSample is the published instruction-tuning record. The three field
// names are a hard external contract with downstream training pipelines.
type TrainingSample struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
}

// Published projects the sample down to the three published fields.
func (s LabeledSample) Published() TrainingSample {
	return TrainingSample{
		Instruction: s.Instruction,
		Input:       s.Input,
		Output:      string(s.Output),
	}
}
