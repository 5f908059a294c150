package agent

import (
	"github.com/nexxia-ai/aigentic/ai"

	"github.com/petasbytes/library-agent/internal/library"
)

// emptyInputSchema declares a closed object with no properties: the
// framework calls library tools with no arguments.
var emptyInputSchema = GenerateSchema[struct{}]()

// LibraryTool wraps a library record as a zero-argument framework
// tool. Invocation surfaces the stored snippet text verbatim; the
// snippet is never executed.
func LibraryTool(rec library.Record) ai.Tool {
	src := rec.SourceCode
	return ai.Tool{
		Name:        rec.Name,
		Description: rec.Description,
		InputSchema: emptyInputSchema,
		Execute: func(args map[string]interface{}) (*ai.ToolResult, error) {
			return textResult("Executing library snippet:\n" + src), nil
		},
	}
}

func textResult(text string) *ai.ToolResult {
	return &ai.ToolResult{
		Content: []ai.ToolContent{{Type: "text", Content: text}},
	}
}

func errorResult(text string) *ai.ToolResult {
	return &ai.ToolResult{
		Content: []ai.ToolContent{{Type: "text", Content: text}},
		Error:   true,
	}
}
