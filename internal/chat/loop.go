// Package chat runs the interactive line-oriented session.
package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner is the slice of the external agent the loop drives.
type Runner interface {
	Execute(message string) (string, error)
}

// Loop reads lines, forwards them to the agent, and prints replies.
// Reads block; the only exits are empty input, "exit", or EOF.
type Loop struct {
	runner Runner
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
}

func New(runner Runner, in io.Reader, out io.Writer, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{runner: runner, in: in, out: out, logger: logger}
}

// Run drives the session until the user terminates it. An agent error
// ends the session and propagates to the caller.
func (l *Loop) Run() error {
	sessionID := uuid.New().String()
	l.logger.Info("chat session started", zap.String("session", sessionID))

	userPrompt := color.New(color.FgHiBlue).Sprint("User> ")
	agentLabel := color.New(color.FgHiGreen).Sprint("Agent: ")

	scanner := bufio.NewScanner(l.in)
	turns := 0
	for {
		fmt.Fprint(l.out, userPrompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" || strings.EqualFold(line, "exit") {
			break
		}

		turns++
		result, err := l.runner.Execute(line)
		if err != nil {
			l.logger.Error("agent turn failed",
				zap.String("session", sessionID), zap.Int("turn", turns), zap.Error(err))
			return fmt.Errorf("agent turn %d: %w", turns, err)
		}
		fmt.Fprintln(l.out, agentLabel+result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	l.logger.Info("chat session ended", zap.String("session", sessionID), zap.Int("turns", turns))
	return nil
}
