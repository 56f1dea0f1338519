package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investingo/internal/llm"
)

func TestAskReturnsProviderText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Diversification spreads risk 📊"})
	g := NewGateway(mock)

	reply := g.Ask(context.Background(), "what is diversification?")

	assert.Equal(t, "Diversification spreads risk 📊", reply)
	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.System, "Barnaby the Bull")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, "what is diversification?", req.Messages[0].Content)
}

func TestAskEmptyResponse(t *testing.T) {
	g := NewGateway(llm.NewMockProvider(llm.MockResponse{Text: "   \n"}))

	reply := g.Ask(context.Background(), "hello")

	assert.Equal(t, EmptyReply, reply)
}

func TestAskProviderError(t *testing.T) {
	g := NewGateway(llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	}))

	reply := g.Ask(context.Background(), "hello")

	assert.Equal(t, MaintenanceReply, reply)
}

func TestAskNilProvider(t *testing.T) {
	g := NewGateway(nil)

	assert.Equal(t, MaintenanceReply, g.Ask(context.Background(), "hello"))
}
