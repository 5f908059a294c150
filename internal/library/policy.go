package library

import (
	"fmt"
	"regexp"
	"strings"
)

// Registration-boundary checks for the firmware policy. The policy
// text in the agent instructions remains advisory for the model; these
// checks gate what actually lands in the shared library file.

var toolNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// bannedImportRegex matches import statements for modules the firmware
// disallows ("import os", "from subprocess import ...", "import os, sys").
var bannedImportRegex = regexp.MustCompile(`(?m)^\s*(?:import\s+(?:[\w.]+\s*,\s*)*(os|subprocess)\b|from\s+(os|subprocess)\b)`)

// ValidateRecord checks rec against the firmware policy: valid tool
// name, a non-empty description, a doc comment in the snippet, and no
// banned imports.
func ValidateRecord(rec Record) error {
	if !toolNameRegex.MatchString(rec.Name) {
		return fmt.Errorf("invalid tool name %q: must match %s", rec.Name, toolNameRegex.String())
	}
	if strings.TrimSpace(rec.Description) == "" {
		return fmt.Errorf("tool %q has no description", rec.Name)
	}
	if strings.TrimSpace(rec.SourceCode) == "" {
		return fmt.Errorf("tool %q has no source code", rec.Name)
	}
	if !hasDocComment(rec.SourceCode) {
		return fmt.Errorf("tool %q source must carry a doc comment", rec.Name)
	}
	if m := bannedImportRegex.FindStringSubmatch(rec.SourceCode); m != nil {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		return fmt.Errorf("tool %q imports disallowed module %q", rec.Name, name)
	}
	return nil
}

// hasDocComment reports whether the snippet contains a docstring or a
// comment line.
func hasDocComment(src string) bool {
	if strings.Contains(src, `"""`) || strings.Contains(src, "'''") {
		return true
	}
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			return true
		}
	}
	return false
}
