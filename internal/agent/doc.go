// Package agent assembles the external framework agent.
//
// Includes:
//   - LibraryTool: wrap a library record as a zero-argument framework tool.
//   - SaveTool: let the model register new snippets into the shared library.
//   - Instructions: the firmware policy and formatting blocks.
//   - GenerateSchema[T](): derive a JSON Schema map from Go structs.
//   - Build: wire tools, instructions, step budget, and model connection.
package agent
