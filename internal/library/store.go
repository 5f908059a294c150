// Package library persists the shared tool library: a JSON array of
// named code snippets that the agent can surface as tools.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Record is one entry in the library file.
type Record struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SourceCode  string `json:"sourceCode"`
}

// SampleRecord is the single record seeded into a fresh or broken
// library file.
func SampleRecord() Record {
	return Record{
		Name:        "example_hello_tool",
		Description: "Example library tool that returns a greeting.",
		SourceCode: "def hello():\n" +
			"    \"\"\"Return a friendly greeting.\"\"\"\n" +
			"    return \"Hello from the shared library!\"\n",
	}
}

// Store reads and writes the library file. The path and seed record
// are fixed at construction; the file is opened and closed per call.
type Store struct {
	path   string
	seed   Record
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, seed: SampleRecord(), logger: logger}
}

// Path returns the library file location.
func (s *Store) Path() string { return s.path }

// Ensure makes the library file usable: when the file is absent, not
// parseable as a record array, or parses to an empty array, it is
// rewritten with the single seed record. I/O errors (unreadable file,
// unwritable directory) propagate to the caller.
func (s *Store) Ensure() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading library file %s: %w", s.path, err)
		}
		s.logger.Info("library file missing, seeding", zap.String("path", s.path))
		return s.write([]Record{s.seed})
	}

	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		s.logger.Warn("library file unparseable, reseeding",
			zap.String("path", s.path), zap.Error(err))
		return s.write([]Record{s.seed})
	}
	if len(recs) == 0 {
		s.logger.Info("library file empty, seeding", zap.String("path", s.path))
		return s.write([]Record{s.seed})
	}
	return nil
}

// Load ensures the file then returns all records in file order.
func (s *Store) Load() ([]Record, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading library file %s: %w", s.path, err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing library file %s: %w", s.path, err)
	}
	return recs, nil
}

// Append validates rec against the firmware policy and rewrites the
// file with rec appended. Duplicate names are rejected.
func (s *Store) Append(rec Record) error {
	if err := ValidateRecord(rec); err != nil {
		return err
	}
	recs, err := s.Load()
	if err != nil {
		return err
	}
	for _, r := range recs {
		if r.Name == rec.Name {
			return fmt.Errorf("tool %q already exists in the library", rec.Name)
		}
	}
	if err := s.write(append(recs, rec)); err != nil {
		return err
	}
	s.logger.Info("registered library tool", zap.String("name", rec.Name))
	return nil
}

func (s *Store) write(recs []Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating library directory %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing library file %s: %w", s.path, err)
	}
	return nil
}
