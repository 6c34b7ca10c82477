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

// Package walker enumerates the files a rewrite run will visit.
package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a walk
type Options struct {
	// Extension is the required file name suffix, e.g. ".kt". Files
	// without it are never visited. Required.
	Extension string
	// Ignores are doublestar globs matched against the path relative
	// to the root. Matching files and directories are skipped.
	Ignores []string
}

// 📄 Result holds the outcome of a walk
type Result struct {
	// Files are the selected paths, absolute, in lexicographic order.
	Files []string
	// Skipped lists directories that could not be listed. The walk
	// continues past them.
	Skipped []*TraversalError
}

// ❌ TraversalError reports a directory that could not be listed
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return "listing directory " + e.Path + ": " + e.Err.Error()
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// 🚶 Walk enumerates every file under root whose name carries the
// configured extension, descending into all reachable subdirectories.
// Directory entries are visited in lexicographic order, so the result
// is deterministic for a given tree. Unreadable directories are
// recorded in Result.Skipped and logged, never fatal; the only error
// return is a root that cannot be resolved or is not a directory.
func Walk(ctx context.Context, root string, opts Options) (*Result, error) {
	if opts.Extension == "" {
		return nil, errors.New("extension is required")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving root %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, errors.Errorf("accessing root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", absRoot)
	}

	w := &walker{
		root:    absRoot,
		opts:    opts,
		visited: map[string]bool{},
		result:  &Result{},
	}
	w.walkDir(ctx, absRoot)
	return w.result, nil
}

// 🎮 walker carries the state of one enumeration
type walker struct {
	root    string
	opts    Options
	visited map[string]bool // real directory paths already entered
	result  *Result
}

func (w *walker) walkDir(ctx context.Context, dir string) {
	logger := zerolog.Ctx(ctx)

	// Guard against symlink cycles: a directory is entered at most
	// once per run, keyed by its resolved path.
	real, err := filepath.EvalSymlinks(dir)
	if err == nil {
		if w.visited[real] {
			logger.Debug().Str("dir", dir).Msg("already visited, skipping")
			return
		}
		w.visited[real] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		terr := &TraversalError{Path: dir, Err: err}
		w.result.Skipped = append(w.result.Skipped, terr)
		logger.Warn().Err(terr).Str("dir", dir).Msg("skipping unreadable directory")
		return
	}

	// os.ReadDir returns entries sorted by name.
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if w.ignored(ctx, path) {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// Follow symlinks; the visited set keeps cycles finite.
			target, err := os.Stat(path)
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("skipping broken symlink")
				continue
			}
			isDir = target.IsDir()
		}

		if isDir {
			w.walkDir(ctx, path)
			continue
		}
		if strings.HasSuffix(entry.Name(), w.opts.Extension) {
			w.result.Files = append(w.result.Files, path)
		}
	}
}

// ignored reports whether path matches any ignore glob.
func (w *walker) ignored(ctx context.Context, path string) bool {
	if len(w.opts.Ignores) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.opts.Ignores {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			zerolog.Ctx(ctx).Debug().Str("path", rel).Str("pattern", pattern).Msg("ignored by pattern")
			return true
		}
	}
	return false
}
