package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petasbytes/library-agent/internal/library"
)

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect and extend the shared snippet library",
	}
	cmd.AddCommand(
		newLibraryListCmd(),
		newLibraryShowCmd(),
		newLibraryAddCmd(),
	)
	return cmd
}

func newLibraryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tools in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := library.NewStore(cfg.Library.Path, logger).Load()
			if err != nil {
				return err
			}
			bold := color.New(color.Bold)
			for _, rec := range recs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", bold.Sprint(rec.Name), rec.Description)
			}
			return nil
		},
	}
}

func newLibraryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a tool's stored source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := library.NewStore(cfg.Library.Path, logger).Load()
			if err != nil {
				return err
			}
			for _, rec := range recs {
				if rec.Name == args[0] {
					bold := color.New(color.Bold)
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n\n%s", bold.Sprint(rec.Name), rec.Description, rec.SourceCode)
					return nil
				}
			}
			return fmt.Errorf("tool %q not found in %s", args[0], cfg.Library.Path)
		},
	}
}

func newLibraryAddCmd() *cobra.Command {
	var (
		name        string
		description string
		sourceFile  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new tool from the command line",
		Long: `Register a new tool into the library file. The snippet source is
read from --file, or from standard input when --file is omitted.
The same firmware policy checks apply as for agent-registered tools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				src []byte
				err error
			)
			if sourceFile != "" {
				src, err = os.ReadFile(sourceFile)
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading snippet source: %w", err)
			}

			store := library.NewStore(cfg.Library.Path, logger)
			rec := library.Record{Name: name, Description: description, SourceCode: string(src)}
			if err := store.Append(rec); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %q into %s\n", name, cfg.Library.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Tool name")
	cmd.Flags().StringVar(&description, "description", "", "One-line tool description")
	cmd.Flags().StringVar(&sourceFile, "file", "", "File holding the snippet source (default: stdin)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}
