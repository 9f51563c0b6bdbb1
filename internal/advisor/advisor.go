package advisor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// FallbackReply is returned whenever advice cannot be generated
const FallbackReply = "I'm sorry, I'm having trouble analyzing your finances right now. Please try again in a moment."

// DefaultTimeout bounds a single advice request
const DefaultTimeout = 30 * time.Second

// Failure describes why a reply fell back
type Failure string

const (
	FailureNone      Failure = ""
	FailureTransport Failure = "transport"
	FailureTimeout   Failure = "timeout"
	FailureEmpty     Failure = "empty"
)

// Generator produces a reply from a system context, prior turns and the new query
type Generator interface {
	Generate(ctx context.Context, systemContext string, history []domain.ChatMessage, query string) (string, error)
}

// Reply is the outcome of an advice request. Text is always safe to show.
type Reply struct {
	Text    string  `json:"text"`
	Failure Failure `json:"failure,omitempty"`
}

// Fallback reports whether the reply is the fixed fallback text
func (r Reply) Fallback() bool {
	return r.Failure != FailureNone
}

type Advisor struct {
	generator Generator
	timeout   time.Duration
}

func NewAdvisor(generator Generator, timeout time.Duration) *Advisor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Advisor{generator: generator, timeout: timeout}
}

// GetAdvice makes one generator call. It never returns an error: every failure
// is logged and collapses to FallbackReply.
func (a *Advisor) GetAdvice(ctx context.Context, query, contextBlock string, history []domain.ChatMessage) Reply {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.generate(ctx, contextBlock, history, query)
	if err != nil {
		failure := FailureTransport
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			failure = FailureTimeout
		}
		log.Error().Err(err).Str("failure", string(failure)).Dur("timeout", a.timeout).Msg("Advice request failed")
		return Reply{Text: FallbackReply, Failure: failure}
	}

	if strings.TrimSpace(text) == "" {
		log.Warn().Str("failure", string(FailureEmpty)).Msg("Advice request returned an empty reply")
		return Reply{Text: FallbackReply, Failure: FailureEmpty}
	}

	return Reply{Text: text}
}

// generate shields the caller from a panicking generator
func (a *Advisor) generate(ctx context.Context, contextBlock string, history []domain.ChatMessage, query string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("generator panicked")
			log.Error().Interface("panic", r).Msg("Advice generator panicked")
		}
	}()
	if a.generator == nil {
		return "", ErrGeneratorUnavailable
	}
	return a.generator.Generate(ctx, contextBlock, history, query)
}
