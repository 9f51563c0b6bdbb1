package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContents(t *testing.T) {
	history := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Text: "first"},
		{Role: domain.ChatRoleModel, Text: "answer"},
	}

	contents := BuildContents(history, "second")

	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "first", contents[0].Parts[0].Text)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "answer", contents[1].Parts[0].Text)
	assert.Equal(t, "user", contents[2].Role)
	assert.Equal(t, "second", contents[2].Parts[0].Text)
}

func TestBuildContents_NoHistory(t *testing.T) {
	contents := BuildContents(nil, "only")

	require.Len(t, contents, 1)
	assert.Equal(t, "only", contents[0].Parts[0].Text)
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	assert.True(t, errors.Is(err, ErrGeneratorUnavailable))
}

func TestUnavailableGenerator(t *testing.T) {
	_, err := UnavailableGenerator{}.Generate(context.Background(), "", nil, "q")
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)
}
