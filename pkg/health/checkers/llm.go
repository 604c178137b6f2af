package checkers

import (
	"context"
	"errors"
)

// LLMConfigChecker fails readiness when no provider key is configured.
// It does not call the provider.
type LLMConfigChecker struct {
	apiKey string
}

func NewLLMConfigChecker(apiKey string) *LLMConfigChecker {
	return &LLMConfigChecker{apiKey: apiKey}
}

func (c *LLMConfigChecker) Name() string { return "llm" }

func (c *LLMConfigChecker) Check(context.Context) error {
	if c.apiKey == "" {
		return errors.New("llm api key is not configured")
	}
	return nil
}
