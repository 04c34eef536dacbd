package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronojoykumar/travel-itinerary-app/internal/prompt"
)

// scriptedCompleter returns the queued outcomes in order.
type scriptedCompleter struct {
	calls    int
	failures int
	err      error
	reply    string
}

func (s *scriptedCompleter) Complete(context.Context, prompt.Prompt) (string, error) {
	s.calls++
	if s.calls <= s.failures {
		return "", s.err
	}
	return s.reply, nil
}

func (s *scriptedCompleter) Chat(ctx context.Context, p prompt.Prompt, _ []Message) (string, error) {
	return s.Complete(ctx, p)
}

func TestWithRetryZeroReturnsUnwrapped(t *testing.T) {
	inner := &scriptedCompleter{reply: "ok"}
	assert.Equal(t, inner, WithRetry(inner, 0))
}

func TestWithRetryRecoversFromTransientFailure(t *testing.T) {
	inner := &scriptedCompleter{failures: 1, err: errors.New("connection reset"), reply: "[]"}
	c := WithRetry(inner, 2)

	out, err := c.Complete(context.Background(), prompt.Prompt{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
	assert.Equal(t, 2, inner.calls)
}

func TestWithRetryGivesUpAfterMaxRetries(t *testing.T) {
	inner := &scriptedCompleter{failures: 10, err: errors.New("boom")}
	c := WithRetry(inner, 2)

	_, err := c.Complete(context.Background(), prompt.Prompt{})
	require.Error(t, err)
	assert.Equal(t, 3, inner.calls) // initial attempt plus two retries
}

func TestWithRetryNotConfiguredIsPermanent(t *testing.T) {
	inner := &scriptedCompleter{failures: 10, err: ErrNotConfigured}
	c := WithRetry(inner, 3)

	_, err := c.Complete(context.Background(), prompt.Prompt{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, 1, inner.calls)
}

func TestWithRetryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &scriptedCompleter{failures: 10, err: errors.New("boom")}
	c := WithRetry(inner, 5)
	_, err := c.Complete(ctx, prompt.Prompt{})
	require.Error(t, err)
	assert.Less(t, inner.calls, 3)
}

func TestWithRetryChatPath(t *testing.T) {
	inner := &scriptedCompleter{failures: 1, err: errors.New("timeout"), reply: "sure"}
	c := WithRetry(inner, 2)

	out, err := c.Chat(context.Background(), prompt.Prompt{}, []Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "sure", out)
}

func TestDisabledCompleter(t *testing.T) {
	var d Disabled
	_, err := d.Complete(context.Background(), prompt.Prompt{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = d.Chat(context.Background(), prompt.Prompt{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
