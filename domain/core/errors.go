package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors: fatal at construction time, never retried
	ErrUnknownGenerator = errors.New("unknown realistic-value generator")
	ErrUnknownPreset    = errors.New("unknown persona preset")
	ErrUnknownScenario  = errors.New("unknown scenario category")
	ErrInvalidWeights   = errors.New("invalid discrete axis weights")
	ErrInvalidRange     = errors.New("invalid numeric range")

	// Generation-time errors: transient, retried per item
	ErrLLMCall    = errors.New("llm call failed")
	ErrLLMTimeout = errors.New("llm call timed out")

	// Persistence errors
	ErrNotFound          = errors.New("resource not found")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Error constructors with context
func NewUnknownGeneratorError(method, locale string) error {
	return fmt.Errorf("%w: %s (%s)", ErrUnknownGenerator, method, locale)
}

func NewUnknownPresetError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func NewUnknownScenarioError(category string) error {
	return fmt.Errorf("%w: %q", ErrUnknownScenario, category)
}

// Error checking helpers
func IsConfigError(err error) bool {
	return errors.Is(err, ErrUnknownGenerator) ||
		errors.Is(err, ErrUnknownPreset) ||
		errors.Is(err, ErrUnknownScenario) ||
		errors.Is(err, ErrInvalidWeights) ||
		errors.Is(err, ErrInvalidRange)
}

func IsRetryableError(err error) bool {
	// Any failure on the LLM boundary is retryable; config errors are not.
	return err != nil && !IsConfigError(err)
}
