package agent

import (
	"fmt"

	"github.com/nexxia-ai/aigentic"
	"github.com/nexxia-ai/aigentic/ai"
	"go.uber.org/zap"

	"github.com/petasbytes/library-agent/internal/library"
)

type SaveToolInput struct {
	Name        string `json:"name" jsonschema_description:"Tool name: lowercase letters, digits, and underscores, starting with a letter."`
	Description string `json:"description" jsonschema_description:"One-line description of what the snippet does."`
	SourceCode  string `json:"source_code" jsonschema_description:"The snippet source, carrying a doc comment."`
}

var saveToolInputSchema = GenerateSchema[SaveToolInput]()

// ConfirmFunc asks the user whether a new snippet may be registered.
// A nil ConfirmFunc means registration proceeds unattended.
type ConfirmFunc func(rec library.Record) bool

// SaveTool lets the model register a new snippet into the shared
// library. Records are validated against the firmware policy; in
// developer mode the confirm callback shows the snippet to the user
// and a declined snippet is discarded.
func SaveTool(store *library.Store, confirm ConfirmFunc, logger *zap.Logger) aigentic.AgentTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return aigentic.AgentTool{
		Name:        "save_tool",
		Description: "Register a new code snippet into the shared tool library. Provide name, description, and source_code.",
		InputSchema: saveToolInputSchema,
		Execute: func(run *aigentic.AgentRun, args map[string]interface{}) (*ai.ToolResult, error) {
			rec := library.Record{
				Name:        stringArg(args, "name"),
				Description: stringArg(args, "description"),
				SourceCode:  stringArg(args, "source_code"),
			}
			if err := library.ValidateRecord(rec); err != nil {
				return errorResult(fmt.Sprintf("rejected by firmware policy: %v", err)), nil
			}
			if confirm != nil && !confirm(rec) {
				logger.Info("tool registration declined", zap.String("name", rec.Name))
				return textResult(fmt.Sprintf("The user declined to register %q; the snippet was discarded.", rec.Name)), nil
			}
			if err := store.Append(rec); err != nil {
				return errorResult(fmt.Sprintf("could not register %q: %v", rec.Name, err)), nil
			}
			return textResult(fmt.Sprintf("Registered %q into the shared library.", rec.Name)), nil
		},
	}
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}
