package chat_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petasbytes/library-agent/internal/chat"
)

type fakeRunner struct {
	calls []string
	reply string
	err   error
}

func (f *fakeRunner) Execute(message string) (string, error) {
	f.calls = append(f.calls, message)
	return f.reply, f.err
}

func TestRun_TerminatesOnExitWithoutInvokingAgent(t *testing.T) {
	for _, input := range []string{"exit\n", "EXIT\n", "Exit\n", "\n", ""} {
		runner := &fakeRunner{reply: "should not be seen"}
		var out bytes.Buffer
		loop := chat.New(runner, strings.NewReader(input), &out, nil)

		require.NoError(t, loop.Run(), "input %q", input)
		assert.Empty(t, runner.calls, "input %q", input)
		assert.Contains(t, out.String(), "User> ", "input %q", input)
		assert.NotContains(t, out.String(), "Agent: ", "input %q", input)
	}
}

func TestRun_ForwardsInputAndPrintsPrefixedReply(t *testing.T) {
	runner := &fakeRunner{reply: "the answer is 4"}
	var out bytes.Buffer
	loop := chat.New(runner, strings.NewReader("what is 2+2?\nexit\n"), &out, nil)

	require.NoError(t, loop.Run())
	require.Equal(t, []string{"what is 2+2?"}, runner.calls)
	assert.Contains(t, out.String(), "Agent: the answer is 4\n")
}

func TestRun_LoopsUntilExit(t *testing.T) {
	runner := &fakeRunner{reply: "ok"}
	var out bytes.Buffer
	loop := chat.New(runner, strings.NewReader("one\ntwo\nthree\nexit\n"), &out, nil)

	require.NoError(t, loop.Run())
	assert.Equal(t, []string{"one", "two", "three"}, runner.calls)
	assert.Equal(t, 3, strings.Count(out.String(), "Agent: "))
}

func TestRun_AgentErrorEndsSession(t *testing.T) {
	runner := &fakeRunner{err: errors.New("model unreachable")}
	var out bytes.Buffer
	loop := chat.New(runner, strings.NewReader("hello\nnever reached\n"), &out, nil)

	err := loop.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unreachable")
	assert.Equal(t, []string{"hello"}, runner.calls)
}

func TestRun_EOFEndsSession(t *testing.T) {
	runner := &fakeRunner{reply: "ok"}
	var out bytes.Buffer
	loop := chat.New(runner, strings.NewReader("hello"), &out, nil)

	require.NoError(t, loop.Run())
	assert.Equal(t, []string{"hello"}, runner.calls)
}
