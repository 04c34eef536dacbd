package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAI("", "gpt-4o")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewOpenAI("   ", "gpt-4o")
	assert.ErrorIs(t, err, ErrNotConfigured)

	c, err := NewOpenAI("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", c.model)
}
