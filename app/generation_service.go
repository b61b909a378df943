package app

import (
	"context"
	"math/rand"
	"time"

	"dialogen/domain/core"
	"dialogen/domain/dataset"
	"dialogen/domain/persona"
	"dialogen/domain/scenario"
	"dialogen/internal"
	"dialogen/internal/config"
	"dialogen/internal/errors"
	"dialogen/ports"
)

// GenerationService orchestrates persona sampling, prompt composition, model
// calls and response parsing into conversation records.
type GenerationService struct {
	llm    ports.LLMClient
	cfg    config.GenerationConfig
	llmCfg config.LLMConfig
	rng    *rand.Rand
	logger *internal.Logger
}

// NewGenerationService creates a generation service. rng drives preset and
// scenario selection; pass a seeded source for reproducible sampling.
func NewGenerationService(llm ports.LLMClient, cfg config.GenerationConfig, llmCfg config.LLMConfig, rng *rand.Rand) *GenerationService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GenerationService{
		llm:    llm,
		cfg:    cfg,
		llmCfg: llmCfg,
		rng:    rng,
		logger: internal.DefaultLogger,
	}
}

// GenerateSingle produces one conversation record. A nil persona or scenario
// is filled in by sampling from the configured preset and category lists.
func (s *GenerationService) GenerateSingle(ctx context.Context, p *persona.Profile, sc *scenario.Scenario) (*dataset.ConversationRecord, error) {
	if p == nil {
		presetName := s.cfg.PersonaPresets[s.rng.Intn(len(s.cfg.PersonaPresets))]
		var err error
		p, err = persona.NewPreset(presetName, s.cfg.Strict, persona.WithRand(s.rng))
		if err != nil {
			return nil, err
		}
		s.logger.Debug("sampled persona preset: %s", presetName)
	}
	if sc == nil {
		category := s.cfg.ScenarioTypes[s.rng.Intn(len(s.cfg.ScenarioTypes))]
		var err error
		sc, err = scenario.Sample(s.rng, category, s.cfg.Strict)
		if err != nil {
			return nil, err
		}
	}

	prompt := ComposePrompt(p, sc)

	callCtx := ctx
	if s.llmCfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.llmCfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := s.llm.Complete(callCtx, prompt)
	if err != nil {
		return nil, errors.WithCode(err, errors.CodeLLM, "conversation generation failed")
	}
	elapsed := time.Since(start)

	record := &dataset.ConversationRecord{
		Conversation: ParseResponse(response),
		Persona:      p.Record(),
		Scenario:     sc.Record(),
	}
	if s.cfg.IncludeMetadata {
		record.Metadata = &dataset.Metadata{
			GeneratedAt:    time.Now(),
			GenerationTime: elapsed.Seconds(),
			Model:          s.llmCfg.Model,
			Temperature:    s.llmCfg.Temperature,
			PersonaPreset:  presetNameOf(p),
			ScenarioType:   sc.Category,
		}
	}

	s.logger.Info("conversation generated in %.2fs", elapsed.Seconds())
	return record, nil
}

// GenerateBatch produces count records sequentially, retrying each item with
// exponential backoff and skipping items that exhaust their retries. The
// returned slice may therefore be shorter than count.
func (s *GenerationService) GenerateBatch(ctx context.Context, count int) ([]dataset.ConversationRecord, error) {
	s.logger.Info("starting batch generation of %d conversations", count)

	results := make([]dataset.ConversationRecord, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		record, err := s.generateWithRetry(ctx)
		if err != nil {
			s.logger.Error("item %d failed after %d attempts: %v", i+1, s.cfg.MaxRetries, err)
			continue
		}
		results = append(results, *record)
		s.logger.Info("progress: %d/%d", len(results), count)

		if i < count-1 && s.cfg.RetryDelay > 0 {
			select {
			case <-time.After(s.cfg.RetryDelay):
			case <-ctx.Done():
				return results, ctx.Err()
			}
		}
	}

	s.logger.Info("batch generation complete: %d/%d succeeded", len(results), count)
	return results, nil
}

func (s *GenerationService) generateWithRetry(ctx context.Context) (*dataset.ConversationRecord, error) {
	var lastErr error
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		record, err := s.GenerateSingle(ctx, nil, nil)
		if err == nil {
			return record, nil
		}
		lastErr = err
		if !core.IsRetryableError(err) {
			return nil, err
		}
		s.logger.Warn("attempt %d failed: %v", attempt+1, err)

		if attempt < s.cfg.MaxRetries-1 {
			backoff := s.cfg.RetryDelay * time.Duration(1<<uint(attempt))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func presetNameOf(p *persona.Profile) string {
	if p.PresetName == "" {
		return "unknown"
	}
	return p.PresetName
}
