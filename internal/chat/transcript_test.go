package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptSeededWithGreeting(t *testing.T) {
	transcript := NewTranscript("Welcome to Lokma!")
	require.Equal(t, 1, transcript.Len())

	first := transcript.Messages()[0]
	assert.Equal(t, SenderBot, first.Sender)
	assert.Equal(t, "Welcome to Lokma!", first.Text)

	empty := NewTranscript("")
	assert.Zero(t, empty.Len())
}

func TestTranscriptAppendKeepsOrder(t *testing.T) {
	transcript := NewTranscript("")
	transcript.Append(SenderUser, "do you have pizza?")
	transcript.Append(SenderBot, "we do")
	transcript.Append(SenderUser, "one please")

	messages := transcript.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, SenderUser, messages[0].Sender)
	assert.Equal(t, "we do", messages[1].Text)
	assert.NotEqual(t, messages[0].ID, messages[1].ID)
}

func TestTranscriptMessagesReturnsCopy(t *testing.T) {
	transcript := NewTranscript("hi")
	messages := transcript.Messages()
	messages[0].Text = "mutated"

	assert.Equal(t, "hi", transcript.Messages()[0].Text)
}
