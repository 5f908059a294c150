// Package cli defines the library-agent command tree.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petasbytes/library-agent/internal/config"
)

var (
	cfgFile     string
	libraryPath string
	devMode     bool

	cfg    *config.Config
	logger *zap.Logger
)

// NewRootCmd creates the top-level library-agent command. Bare
// invocation starts the chat loop.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library-agent",
		Short: "Chat with a code agent backed by a shared snippet library",
		Long: `library-agent loads a shared library of named code snippets,
exposes each snippet as an agent tool, and opens an interactive chat
session against an OpenAI-compatible model endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; absence is not an error.
			_ = godotenv.Load()

			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if libraryPath != "" {
				c.Library.Path = libraryPath
			}
			if devMode {
				c.Agent.DeveloperMode = true
			}
			cfg = c

			logger, err = newLogger(c.Log.Level)
			return err
		},
		RunE: runChat,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&libraryPath, "library", "", "Path to the library JSON file (overrides config)")
	cmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Developer mode: confirm new tools before they are registered")

	cmd.AddCommand(
		newChatCmd(),
		newLibraryCmd(),
	)

	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = lvl
	return zc.Build()
}
