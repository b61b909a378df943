package app

import (
	"encoding/json"
	"strings"

	"dialogen/domain/conversation"
	"dialogen/internal"
)

// ParseResponse extracts a conversation from raw model output. Extraction is
// tried in order: fenced json block, outermost brace span, whole text. A
// payload that refuses to parse is not dropped; the raw text is preserved as
// a single assistant turn so the record can still be inspected downstream.
func ParseResponse(text string) conversation.Conversation {
	payload := extractJSON(text)

	if conv, ok := decodeConversation(payload); ok {
		return conv
	}

	internal.DefaultLogger.Warn("response is not valid conversation JSON, keeping raw text")
	return conversation.Conversation{
		{Role: conversation.RoleAssistant, Content: text},
	}
}

func extractJSON(text string) string {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func decodeConversation(payload string) (conversation.Conversation, bool) {
	// Object with a conversation key is the canonical shape.
	var wrapped struct {
		Conversation conversation.Conversation `json:"conversation"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapped); err == nil && wrapped.Conversation != nil {
		return wrapped.Conversation, true
	}

	// Bare turn list.
	var turns conversation.Conversation
	if err := json.Unmarshal([]byte(payload), &turns); err == nil && turns != nil {
		return turns, true
	}

	// Any other valid JSON value becomes a single assistant turn.
	var anyValue interface{}
	if err := json.Unmarshal([]byte(payload), &anyValue); err == nil {
		return conversation.Conversation{
			{Role: conversation.RoleAssistant, Content: payload},
		}, true
	}

	return nil, false
}
