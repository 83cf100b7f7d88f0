// Package ai is the LLM collaborator: influencer discovery from a free-text
// description, influencer summaries and campaign insights.
package ai

import (
	"context"
	"errors"
	"strings"

	"collabhub/internal/config"
	"collabhub/internal/metrics"
	"collabhub/internal/model"
)

var (
	ErrNotConfigured    = errors.New("ai: client is not configured")
	ErrEmptyDescription = errors.New("ai: empty description")
)

// Client is the collaborator surface. Calls are single attempts.
type Client interface {
	FindInfluencers(ctx context.Context, description string) ([]model.Influencer, error)
	Summarize(ctx context.Context, inf model.Influencer) (string, error)
	CampaignInsights(ctx context.Context, campaignName string, rows []model.CampaignInfluencer) (string, error)
}

// Status is the lifecycle of one collaborator call as a caller renders it.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Outcome is the settled result of a call. Failures are a status, not a
// panic or a retry.
type Outcome[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Run performs one call and records it under op.
func Run[T any](ctx context.Context, op string, f func(context.Context) (T, error)) Outcome[T] {
	v, err := f(ctx)
	metrics.IncAICall(op, err)
	if err != nil {
		return Outcome[T]{Status: StatusError, Err: err}
	}
	return Outcome[T]{Status: StatusDone, Value: v}
}

// Unavailable fails every call with ErrNotConfigured.
type Unavailable struct{}

func (Unavailable) FindInfluencers(context.Context, string) ([]model.Influencer, error) {
	return nil, ErrNotConfigured
}

func (Unavailable) Summarize(context.Context, model.Influencer) (string, error) {
	return "", ErrNotConfigured
}

func (Unavailable) CampaignInsights(context.Context, string, []model.CampaignInfluencer) (string, error) {
	return "", ErrNotConfigured
}

// New picks the client named by cfg.Provider. The heuristic client ranks
// pool; openai without an API key is Unavailable.
func New(cfg config.LLMConfig, pool func() []model.Influencer) Client {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "openai":
		if cfg.APIKey == "" {
			return Unavailable{}
		}
		return NewHTTPClient(cfg)
	case "heuristic":
		return &Heuristic{Pool: pool}
	default:
		return Unavailable{}
	}
}
