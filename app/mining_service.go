package app

import (
	"context"
	"math/rand"
	"strings"

	"golang.org/x/sync/errgroup"

	"dialogen/domain/conversation"
	"dialogen/domain/core"
	"dialogen/domain/dataset"
	"dialogen/internal"
	"dialogen/ports"
)

const (
	// contextTurns bounds the rendered window for every mined sample.
	contextTurns = 2

	// minLongTurnRunes gates which turns are long enough to truncate.
	minLongTurnRunes = 30

	// minSplitTurnRunes gates turns eligible for a mid-speech backchannel.
	minSplitTurnRunes = 20

	// minFragmentRunes discards truncations that leave too little content.
	minFragmentRunes = 10
)

// truncateChars are the boundary characters a truncation point snaps to.
var truncateChars = map[rune]bool{
	'，': true, '。': true, '！': true, '？': true, '、': true, ' ': true, '；': true,
}

// MiningService derives labeled turn-taking samples from generated
// conversations. Every (label, category) cell draws from its own named RNG
// stream, so output is reproducible for a given run ID and seed regardless of
// how the cells are scheduled.
type MiningService struct {
	rngPort ports.RNGPort
	logger  *internal.Logger
}

// MiningRequest defines one mining pass over grouped conversations.
type MiningRequest struct {
	RunID           core.RunID
	Grouped         *conversation.Grouped
	SamplesPerLabel int
	Seed            int64
}

// MiningResult carries the shuffled published samples plus per-label counts
// for reporting.
type MiningResult struct {
	Samples     []dataset.TrainingSample
	LabelCounts map[dataset.Label]int
}

// NewMiningService creates a mining service.
func NewMiningService(rngPort ports.RNGPort) *MiningService {
	return &MiningService{rngPort: rngPort, logger: internal.DefaultLogger}
}

// Mine runs all four label generators over every scenario category, flattens
// the results in label-then-category order, shuffles them with a dedicated
// stream and projects the published fields.
func (s *MiningService) Mine(ctx context.Context, req MiningRequest) (*MiningResult, error) {
	categories := validCategories(req.Grouped)
	if len(categories) == 0 {
		return &MiningResult{LabelCounts: map[dataset.Label]int{}}, nil
	}

	labels := dataset.Labels()
	perCategory := req.SamplesPerLabel / len(categories)

	// One result slot per (label, category) cell keeps the flatten order
	// independent of goroutine scheduling.
	cells := make([][]dataset.LabeledSample, len(labels)*len(categories))
	g, gctx := errgroup.WithContext(ctx)

	for li, label := range labels {
		for ci, category := range categories {
			li, ci, label, category := li, ci, label, category
			g.Go(func() error {
				rng, err := s.rngPort.Stream(gctx, string(req.RunID), string(label), category, req.Seed)
				if err != nil {
					return err
				}
				convs := req.Grouped.Get(category)
				mined := s.mineCell(label, category, convs, perCategory, rng)
				cells[li*len(categories)+ci] = mined
				s.logger.Info("category %q: mined %d %s samples", category, len(mined), label)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []dataset.LabeledSample
	counts := make(map[dataset.Label]int, len(labels))
	for _, cell := range cells {
		all = append(all, cell...)
		for _, sample := range cell {
			counts[sample.Output]++
		}
	}

	shuffleRNG, err := s.rngPort.Stream(ctx, string(req.RunID), "shuffle", "", req.Seed)
	if err != nil {
		return nil, err
	}
	shuffleRNG.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	published := make([]dataset.TrainingSample, len(all))
	for i, sample := range all {
		published[i] = sample.Published()
	}
	return &MiningResult{Samples: published, LabelCounts: counts}, nil
}

func (s *MiningService) mineCell(label dataset.Label, category string, convs []conversation.Conversation, quota int, rng *rand.Rand) []dataset.LabeledSample {
	switch label {
	case dataset.LabelEndOfTurn:
		return mineEndOfTurn(category, convs, quota, rng)
	case dataset.LabelContinueTurn:
		return mineContinueTurn(category, convs, quota, rng)
	case dataset.LabelInterrupt:
		return mineInterrupt(category, convs, quota, rng)
	case dataset.LabelContinueSpeak:
		return mineContinueSpeak(category, convs, quota, rng)
	}
	return nil
}

// mineEndOfTurn samples complete turns as-is. User and assistant turns each
// fill half the quota, the assistant getting any odd remainder.
func mineEndOfTurn(category string, convs []conversation.Conversation, quota int, rng *rand.Rand) []dataset.LabeledSample {
	userQuota := quota / 2
	assistantQuota := quota - userQuota
	maxAttempts := len(convs) * 3

	var samples []dataset.LabeledSample
	for _, part := range []struct {
		role    conversation.Role
		subject dataset.Subject
		quota   int
	}{
		{conversation.RoleUser, dataset.SubjectUserTurn, userQuota},
		{conversation.RoleAssistant, dataset.SubjectAssistantTurn, assistantQuota},
	} {
		count := 0
		for attempts := 0; count < part.quota && attempts < maxAttempts; attempts++ {
			conv := convs[rng.Intn(len(convs))]
			if len(conv) < 2 {
				continue
			}
			turns := conv.TurnIndexes(part.role)
			if len(turns) == 0 {
				continue
			}
			turnIdx := turns[rng.Intn(len(turns))]
			samples = append(samples, dataset.LabeledSample{
				Instruction: dataset.TurnEndInstruction(part.role),
				Input:       conv.ContextWindow(turnIdx, contextTurns),
				Output:      dataset.LabelEndOfTurn,
				Scenario:    category,
				Type:        part.subject,
			})
			count++
		}
	}
	return samples
}

// mineContinueTurn truncates long turns mid-utterance to simulate an
// unfinished speaker.
func mineContinueTurn(category string, convs []conversation.Conversation, quota int, rng *rand.Rand) []dataset.LabeledSample {
	userQuota := quota / 2
	assistantQuota := quota - userQuota
	maxAttempts := len(convs) * 3

	var samples []dataset.LabeledSample
	for _, part := range []struct {
		role    conversation.Role
		subject dataset.Subject
		quota   int
	}{
		{conversation.RoleUser, dataset.SubjectUserTurn, userQuota},
		{conversation.RoleAssistant, dataset.SubjectAssistantTurn, assistantQuota},
	} {
		count := 0
		for attempts := 0; count < part.quota && attempts < maxAttempts; attempts++ {
			conv := convs[rng.Intn(len(convs))]
			turns := conv.LongTurnIndexes(part.role, minLongTurnRunes)
			if len(turns) == 0 {
				continue
			}
			turnIdx := turns[rng.Intn(len(turns))]

			truncated, ok := truncateAt(conv[turnIdx].Content, 0.3+rng.Float64()*0.5, rng)
			if !ok {
				continue
			}

			modified := append(conversation.Conversation{}, conv[:turnIdx]...)
			modified = append(modified, conversation.Turn{Role: part.role, Content: truncated})

			samples = append(samples, dataset.LabeledSample{
				Instruction: dataset.TurnEndInstruction(part.role),
				Input:       modified.ContextWindow(len(modified)-1, contextTurns),
				Output:      dataset.LabelContinueTurn,
				Scenario:    category,
				Type:        part.subject,
			})
			count++
		}
	}
	return samples
}

// mineInterrupt truncates an assistant turn and appends a floor-seizing user
// utterance from the interrupt bank.
func mineInterrupt(category string, convs []conversation.Conversation, quota int, rng *rand.Rand) []dataset.LabeledSample {
	maxAttempts := len(convs) * 3

	var samples []dataset.LabeledSample
	count := 0
	for attempts := 0; count < quota && attempts < maxAttempts; attempts++ {
		conv := convs[rng.Intn(len(convs))]
		turns := conv.LongTurnIndexes(conversation.RoleAssistant, minLongTurnRunes)
		if len(turns) == 0 {
			continue
		}
		turnIdx := turns[rng.Intn(len(turns))]

		truncated, ok := truncateAt(conv[turnIdx].Content, 0.2+rng.Float64()*0.5, rng)
		if !ok {
			continue
		}
		phrase := interruptPhrases[rng.Intn(len(interruptPhrases))]

		modified := append(conversation.Conversation{}, conv[:turnIdx]...)
		modified = append(modified,
			conversation.Turn{Role: conversation.RoleAssistant, Content: truncated},
			conversation.Turn{Role: conversation.RoleUser, Content: phrase},
		)

		samples = append(samples, dataset.LabeledSample{
			Instruction: dataset.OverlapInstruction,
			Input:       modified.ContextWindow(len(modified)-1, contextTurns),
			Output:      dataset.LabelInterrupt,
			Scenario:    category,
			Type:        dataset.SubjectAssistantSpeaking,
		})
		count++
	}
	return samples
}

// mineContinueSpeak splits an assistant turn at an arbitrary point, no
// boundary snapping, and appends a backchannel user utterance.
func mineContinueSpeak(category string, convs []conversation.Conversation, quota int, rng *rand.Rand) []dataset.LabeledSample {
	maxAttempts := len(convs) * 3

	var samples []dataset.LabeledSample
	count := 0
	for attempts := 0; count < quota && attempts < maxAttempts; attempts++ {
		conv := convs[rng.Intn(len(convs))]
		turns := conv.LongTurnIndexes(conversation.RoleAssistant, minSplitTurnRunes)
		if len(turns) == 0 {
			continue
		}
		turnIdx := turns[rng.Intn(len(turns))]

		content := []rune(conv[turnIdx].Content)
		lo, hi := len(content)/4, len(content)*3/4
		splitPos := lo + rng.Intn(hi-lo+1)

		partial := strings.TrimSpace(string(content[:splitPos]))
		if len([]rune(partial)) < minFragmentRunes {
			continue
		}
		phrase := backchannelPhrases[rng.Intn(len(backchannelPhrases))]

		modified := append(conversation.Conversation{}, conv[:turnIdx]...)
		modified = append(modified,
			conversation.Turn{Role: conversation.RoleAssistant, Content: partial},
			conversation.Turn{Role: conversation.RoleUser, Content: phrase},
		)

		samples = append(samples, dataset.LabeledSample{
			Instruction: dataset.OverlapInstruction,
			Input:       modified.ContextWindow(len(modified)-1, contextTurns),
			Output:      dataset.LabelContinueSpeak,
			Scenario:    category,
			Type:        dataset.SubjectAssistantSpeaking,
		})
		count++
	}
	return samples
}

// truncateAt cuts content at roughly ratio of its rune length, snapping to
// the nearest boundary character within ten runes of the target. Cuts that
// leave fewer than minFragmentRunes runes are rejected.
func truncateAt(content string, ratio float64, rng *rand.Rand) (string, bool) {
	runes := []rune(content)
	pos := int(float64(len(runes)) * ratio)

	best := pos
	lo := pos - 10
	if lo < 0 {
		lo = 0
	}
	hi := pos + 10
	if hi > len(runes) {
		hi = len(runes)
	}
	for i := lo; i < hi; i++ {
		if truncateChars[runes[i]] {
			best = i
			break
		}
	}

	truncated := strings.TrimSpace(string(runes[:best]))
	if len([]rune(truncated)) < minFragmentRunes {
		return "", false
	}
	return truncated, true
}

func validCategories(grouped *conversation.Grouped) []string {
	var out []string
	for _, cat := range grouped.Categories() {
		if len(grouped.Get(cat)) > 0 {
			out = append(out, cat)
		}
	}
	return out
}
