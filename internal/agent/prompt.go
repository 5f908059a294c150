package agent

import "strings"

// The firmware policy is advisory text consumed by the language model.
// The only rules enforced in code are the registration-boundary checks
// in the library package.
var firmwarePolicy = []string{
	"# FIRMWARE",
	"1) Every code snippet you author must carry a doc comment describing what it does.",
	"2) The imports 'os' and 'subprocess' are disallowed in authored snippets.",
	"3) Reusable snippets must be registered into the shared library with the save_tool tool, supplying name, description, and source code.",
	"4) When developer mode is active, newly authored snippets are shown to the user and require an explicit yes/no confirmation before they are finalised; a declined snippet is discarded.",
}

var formattingInstructions = []string{
	"# FORMATTING",
	"Answer in plain text. Present code inside fenced code blocks.",
	"When you use a library tool, quote its output rather than paraphrasing it.",
}

// Instructions returns the newline-joined firmware policy and
// formatting blocks. The framework appends this, unmodified, to its
// own default system message.
func Instructions() string {
	return strings.Join(firmwarePolicy, "\n") + "\n\n" + strings.Join(formattingInstructions, "\n")
}
