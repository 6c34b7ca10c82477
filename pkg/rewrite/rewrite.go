// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rewrite drives a substitution run over a file tree.
package rewrite

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/subrc/pkg/rules"
	"github.com/walteh/subrc/pkg/status"
	"github.com/walteh/subrc/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Config describes one rewrite run
type Config struct {
	// Root is the directory the run operates on. Required.
	Root string
	// Extension selects files by name suffix, e.g. ".kt". Required.
	Extension string
	// Ignores are doublestar globs for files and directories to skip.
	Ignores []string
	// Table is the substitution table, applied in order to every
	// selected file. Required, and read-only for the whole run.
	Table rules.Table
}

// 📊 Report accumulates the outcome of a run
type Report struct {
	// Updated lists the files that were rewritten, as paths relative
	// to the root, in visit order.
	Updated []string
	// Failed counts files that errored on read or write. Such files
	// appear in diagnostics only, never in Updated.
	Failed int
	// SkippedDirs counts directories the walk could not list.
	SkippedDirs int
}

// 🎮 Engine orchestrates the full run
type Engine struct {
	cfg     Config
	printer *status.Printer
}

// 🏭 New creates an engine for cfg, validating required fields
func New(cfg Config, printer *status.Printer) (*Engine, error) {
	if cfg.Root == "" {
		return nil, errors.New("root is required")
	}
	if cfg.Extension == "" {
		return nil, errors.New("extension is required")
	}
	if len(cfg.Table) == 0 {
		return nil, errors.New("substitution table is required")
	}
	if printer == nil {
		return nil, errors.New("printer is required")
	}
	return &Engine{
		cfg:     cfg,
		printer: printer,
	}, nil
}

// 🏃 Execute runs the rewrite over every selected file, sequentially.
// Per-file read and write failures are reported and counted but never
// abort the batch; the only error return is a root that cannot be
// walked at all.
func (e *Engine) Execute(ctx context.Context) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	absRoot, err := filepath.Abs(e.cfg.Root)
	if err != nil {
		return nil, errors.Errorf("resolving root %s: %w", e.cfg.Root, err)
	}

	res, err := walker.Walk(ctx, absRoot, walker.Options{
		Extension: e.cfg.Extension,
		Ignores:   e.cfg.Ignores,
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", absRoot, err)
	}

	report := &Report{
		SkippedDirs: len(res.Skipped),
	}

	for _, path := range res.Files {
		name, err := filepath.Rel(absRoot, path)
		if err != nil {
			name = path
		}

		replacements, changed, err := e.processFile(ctx, path)
		if err != nil {
			report.Failed++
			e.printer.FileError(name, err)
			continue
		}
		if !changed {
			logger.Debug().Str("file", name).Msg("unchanged")
			continue
		}

		report.Updated = append(report.Updated, name)
		e.printer.FileUpdated(name, replacements)
	}

	return report, nil
}

// 📄 processFile runs the per-file pipeline:
// read → transform → compare → write (only when changed)
func (e *Engine) processFile(ctx context.Context, path string) (int, bool, error) {
	logger := zerolog.Ctx(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, false, &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(raw) {
		return 0, false, &ReadError{Path: path, Err: errors.New("content is not valid UTF-8")}
	}

	content := string(raw)
	transformed, replacements := e.cfg.Table.ApplyCount(content)
	if transformed == content {
		// Untouched files are never opened for writing.
		return 0, false, nil
	}

	if logger.GetLevel() <= zerolog.DebugLevel {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(content, transformed, false)
		logger.Debug().
			Str("file", path).
			Int("chunks", len(diffs)).
			Int("replacements", replacements).
			Msg("content transformed")
	}

	if err := e.writeFileAtomic(path, []byte(transformed)); err != nil {
		return 0, false, &WriteError{Path: path, Err: err}
	}
	return replacements, true, nil
}

// writeFileAtomic persists content by writing a sibling temp file and
// renaming it over path, so a failed write never leaves a truncated
// file behind. The original file mode is preserved.
func (e *Engine) writeFileAtomic(path string, content []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
