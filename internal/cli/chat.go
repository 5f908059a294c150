package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petasbytes/library-agent/internal/agent"
	"github.com/petasbytes/library-agent/internal/chat"
	"github.com/petasbytes/library-agent/internal/library"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive chat session",
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	store := library.NewStore(cfg.Library.Path, logger)
	recs, err := store.Load()
	if err != nil {
		return err
	}

	var confirm agent.ConfirmFunc
	if cfg.Agent.DeveloperMode {
		confirm = stdinConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	a := agent.Build(cfg, recs, store, confirm, logger)
	loop := chat.New(a, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	return loop.Run()
}

// stdinConfirm shows a newly authored snippet and asks for an explicit
// yes/no. Anything other than "y"/"yes" declines.
func stdinConfirm(in io.Reader, out io.Writer) agent.ConfirmFunc {
	return func(rec library.Record) bool {
		bold := color.New(color.Bold)
		bold.Fprintf(out, "\nThe agent wants to register a new tool: %s\n", rec.Name)
		fmt.Fprintf(out, "%s\n\n%s\n", rec.Description, rec.SourceCode)
		fmt.Fprint(out, "Register this tool? [y/N] ")

		reader := bufio.NewReader(in)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}
