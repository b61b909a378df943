package core

import (
	"fmt"
	"testing"
)

func TestIsConfigError(t *testing.T) {
	configErrs := []error{
		NewUnknownGeneratorError("address", "zh_CN"),
		NewUnknownPresetError("no_such_preset"),
		NewUnknownScenarioError("未知场景"),
		ErrInvalidWeights,
		fmt.Errorf("%w: [70, 18]", ErrInvalidRange),
	}
	for _, err := range configErrs {
		if !IsConfigError(err) {
			t.Errorf("%v not recognized as config error", err)
		}
		if IsRetryableError(err) {
			t.Errorf("config error %v must not be retryable", err)
		}
	}
}

func TestIsRetryableError(t *testing.T) {
	if !IsRetryableError(fmt.Errorf("%w: connection reset", ErrLLMCall)) {
		t.Error("llm call failure must be retryable")
	}
	if !IsRetryableError(fmt.Errorf("%w: deadline exceeded", ErrLLMTimeout)) {
		t.Error("llm timeout must be retryable")
	}
	if IsRetryableError(nil) {
		t.Error("nil error must not be retryable")
	}
}

func TestParseRunID(t *testing.T) {
	id, err := ParseRunID("run_night_batch")
	if err != nil {
		t.Fatal(err)
	}
	if id.String() != "run_night_batch" {
		t.Errorf("parsed %q", id)
	}
	if _, err := ParseRunID("   "); err == nil {
		t.Error("blank run ID must be rejected")
	}
}
