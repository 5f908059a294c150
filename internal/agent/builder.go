package agent

import (
	"github.com/nexxia-ai/aigentic"
	openai "github.com/nexxia-ai/aigentic-openai"
	"go.uber.org/zap"

	"github.com/petasbytes/library-agent/internal/config"
	"github.com/petasbytes/library-agent/internal/library"
)

const agentName = "library-agent"

const agentDescription = "You are a coding assistant with access to a shared library of code snippets. " +
	"Each library tool surfaces one stored snippet."

// Tools builds the framework tool list: one adapter per library
// record plus the registration tool.
func Tools(recs []library.Record, store *library.Store, confirm ConfirmFunc, logger *zap.Logger) []aigentic.AgentTool {
	tools := make([]aigentic.AgentTool, 0, len(recs)+1)
	for _, rec := range recs {
		tools = append(tools, aigentic.WrapTool(LibraryTool(rec)))
	}
	tools = append(tools, SaveTool(store, confirm, logger))
	return tools
}

// Build constructs the framework agent: the tool list, the composed
// instructions, the step budget, and the model connection. Model
// reachability is not checked here; a bad connection surfaces on the
// first turn.
func Build(cfg *config.Config, recs []library.Record, store *library.Store, confirm ConfirmFunc, logger *zap.Logger) *aigentic.Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := openai.NewModel(cfg.Model.Name, cfg.Model.APIKey, cfg.Model.BaseURL).
		WithContextSize(cfg.Model.ContextWindow)

	a := &aigentic.Agent{
		Model:        model,
		Name:         agentName,
		Description:  agentDescription,
		Instructions: Instructions(),
		AgentTools:   Tools(recs, store, confirm, logger),
		MaxLLMCalls:  cfg.Agent.MaxSteps,
	}
	logger.Info("built agent",
		zap.Int("library_tools", len(recs)),
		zap.String("model", cfg.Model.Name),
		zap.String("base_url", cfg.Model.BaseURL),
		zap.Int("max_steps", cfg.Agent.MaxSteps),
	)
	return a
}
