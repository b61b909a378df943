package conversation

import (
	"fmt"
	"strings"
)

// Role tags who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged utterance. Content is never validated beyond the
// role tag; the miner filters by length where it matters.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered sequence of turns.
type Conversation []Turn

// TurnIndexes returns the indexes of all turns with the given role.
func (c Conversation) TurnIndexes(role Role) []int {
	var idx []int
	for i, t := range c {
		if t.Role == role {
			idx = append(idx, i)
		}
	}
	return idx
}

// LongTurnIndexes returns the indexes of turns with the given role whose
// content exceeds minRunes runes.
func (c Conversation) LongTurnIndexes(role Role, minRunes int) []int {
	var idx []int
	for i, t := range c {
		if t.Role == role && len([]rune(t.Content)) > minRunes {
			idx = append(idx, i)
		}
	}
	return idx
}

// ContextWindow renders the trailing window of up to contextTurns turns ending
// at endIdx, one "role: content" line per turn.
func (c Conversation) ContextWindow(endIdx, contextTurns int) string {
	start := endIdx - contextTurns + 1
	if start < 0 {
		start = 0
	}
	lines := make([]string, 0, contextTurns)
	for _, t := range c[start : endIdx+1] {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Content))
	}
	return strings.Join(lines, "\n")
}

// Grouped holds conversations bucketed by scenario category, preserving
// first-seen category order so downstream iteration is deterministic.
type Grouped struct {
	order      []string
	byCategory map[string][]Conversation
}

// NewGrouped creates an empty group set.
func NewGrouped() *Grouped {
	return &Grouped{byCategory: make(map[string][]Conversation)}
}

// Add appends a conversation to its category bucket.
func (g *Grouped) Add(category string, conv Conversation) {
	if _, ok := g.byCategory[category]; !ok {
		g.order = append(g.order, category)
	}
	g.byCategory[category] = append(g.byCategory[category], conv)
}

// Categories lists categories in first-seen order.
func (g *Grouped) Categories() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Get returns the conversations for a category.
func (g *Grouped) Get(category string) []Conversation {
	return g.byCategory[category]
}

// Total counts conversations across all categories.
func (g *Grouped) Total() int {
	n := 0
	for _, convs := range g.byCategory {
		n += len(convs)
	}
	return n
}
