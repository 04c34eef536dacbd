package llm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/ronojoykumar/travel-itinerary-app/internal/prompt"
)

// WithRetry decorates a Completer with bounded exponential backoff for
// transport failures. Shape failures never reach this layer: a malformed but
// delivered reply is a successful completion, and re-sending the same prompt
// would not fix it. maxRetries of 0 disables retrying.
func WithRetry(next Completer, maxRetries uint64) Completer {
	if maxRetries == 0 {
		return next
	}
	return &retryCompleter{next: next, maxRetries: maxRetries}
}

type retryCompleter struct {
	next       Completer
	maxRetries uint64
}

func (r *retryCompleter) Complete(ctx context.Context, p prompt.Prompt) (string, error) {
	return r.retry(ctx, func() (string, error) { return r.next.Complete(ctx, p) })
}

func (r *retryCompleter) Chat(ctx context.Context, p prompt.Prompt, history []Message) (string, error) {
	return r.retry(ctx, func() (string, error) { return r.next.Chat(ctx, p, history) })
}

func (r *retryCompleter) retry(ctx context.Context, call func() (string, error)) (string, error) {
	var out string
	op := func() error {
		s, err := call()
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				return backoff.Permanent(err)
			}
			log.Warn().Err(err).Msg("model call failed, retrying")
			return err
		}
		out = s
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return "", err
	}
	return out, nil
}
