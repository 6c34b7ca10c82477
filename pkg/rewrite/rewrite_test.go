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

package rewrite_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/subrc/pkg/rewrite"
	"github.com/walteh/subrc/pkg/rules"
	"github.com/walteh/subrc/pkg/status"
)

// 🧪 testEnv is a populated root directory plus the wiring to run
// an engine against it
type testEnv struct {
	ctx     context.Context
	root    string
	console *bytes.Buffer
}

func newTestEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return &testEnv{
		ctx:     logger.WithContext(context.Background()),
		root:    root,
		console: &bytes.Buffer{},
	}
}

func (env *testEnv) run(t *testing.T, cfg rewrite.Config) *rewrite.Report {
	t.Helper()
	cfg.Root = env.root
	logger := *zerolog.Ctx(env.ctx)
	engine, err := rewrite.New(cfg, status.NewPrinter(env.console, logger))
	require.NoError(t, err)
	report, err := engine.Execute(env.ctx)
	require.NoError(t, err)
	return report
}

func (env *testEnv) read(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(env.root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(content)
}

func TestEngine_RewritesMatchingFiles(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"screen.kt":     `val s = "準備完了"`,
		"other.txt":     `準備完了`,
		"sub/status.kt": `準備完了 and 準備完了`,
	})

	cfg := rewrite.Config{
		Extension: ".kt",
		Table: rules.New(
			rules.Rule{From: "準備完了", To: "Ready"},
		),
	}

	report := env.run(t, cfg)
	assert.Equal(t, []string{"screen.kt", filepath.Join("sub", "status.kt")}, report.Updated)
	assert.Equal(t, 0, report.Failed)

	assert.Equal(t, `val s = "Ready"`, env.read(t, "screen.kt"))
	assert.Equal(t, `Ready and Ready`, env.read(t, "sub/status.kt"))
	// Files outside the extension filter are untouched.
	assert.Equal(t, `準備完了`, env.read(t, "other.txt"))

	out := env.console.String()
	assert.Contains(t, out, "screen.kt")
	assert.Contains(t, out, "2 replacements")
}

func TestEngine_SecondRunIsIdempotent(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"screen.kt": `val s = "準備完了"`,
	})

	cfg := rewrite.Config{
		Extension: ".kt",
		Table: rules.New(
			rules.Rule{From: "準備完了", To: "Ready"},
		),
	}

	first := env.run(t, cfg)
	require.Equal(t, []string{"screen.kt"}, first.Updated)

	second := env.run(t, cfg)
	assert.Empty(t, second.Updated)
	assert.Equal(t, 0, second.Failed)
}

func TestEngine_UnmatchedFileIsLeftIntact(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"plain.kt": "nothing to see here\n",
	})

	// A read-only file proves the engine never opens it for writing.
	path := filepath.Join(env.root, "plain.kt")
	require.NoError(t, os.Chmod(path, 0444))
	t.Cleanup(func() { _ = os.Chmod(path, 0644) })

	before, err := os.Stat(path)
	require.NoError(t, err)

	report := env.run(t, rewrite.Config{
		Extension: ".kt",
		Table: rules.New(
			rules.Rule{From: "準備完了", To: "Ready"},
		),
	})

	assert.Empty(t, report.Updated)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, "nothing to see here\n", env.read(t, "plain.kt"))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestEngine_PartialFailureIsolation(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}

	env := newTestEnv(t, map[string]string{
		"a.kt": "準備完了",
		"b.kt": "準備完了",
		"c.kt": "準備完了",
	})

	locked := filepath.Join(env.root, "b.kt")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0644) })

	report := env.run(t, rewrite.Config{
		Extension: ".kt",
		Table: rules.New(
			rules.Rule{From: "準備完了", To: "Ready"},
		),
	})

	assert.Equal(t, []string{"a.kt", "c.kt"}, report.Updated)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "Ready", env.read(t, "a.kt"))
	assert.Equal(t, "Ready", env.read(t, "c.kt"))
	assert.Contains(t, env.console.String(), "b.kt")
}

func TestEngine_InvalidUTF8IsAReadError(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"good.kt": "準備完了",
	})
	binary := filepath.Join(env.root, "bad.kt")
	require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x81}, 0644))

	report := env.run(t, rewrite.Config{
		Extension: ".kt",
		Table: rules.New(
			rules.Rule{From: "準備完了", To: "Ready"},
		),
	})

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"good.kt"}, report.Updated)
	// The malformed file is never rewritten.
	raw, err := os.ReadFile(binary)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfe, 0x00, 0x81}, raw)
}

func TestEngine_IgnorePatterns(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"main.kt":      "準備完了",
		"build/gen.kt": "準備完了",
	})

	report := env.run(t, rewrite.Config{
		Extension: ".kt",
		Ignores:   []string{"build"},
		Table: rules.New(
			rules.Rule{From: "準備完了", To: "Ready"},
		),
	})

	assert.Equal(t, []string{"main.kt"}, report.Updated)
	assert.Equal(t, "準備完了", env.read(t, "build/gen.kt"))
}

func TestEngine_MissingRootIsFatal(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	engine, err := rewrite.New(rewrite.Config{
		Root:      filepath.Join(t.TempDir(), "nope"),
		Extension: ".kt",
		Table: rules.New(
			rules.Rule{From: "a", To: "b"},
		),
	}, status.NewPrinter(&bytes.Buffer{}, logger))
	require.NoError(t, err)

	_, err = engine.Execute(ctx)
	require.Error(t, err)
}

func TestNew_Validation(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	printer := status.NewPrinter(&bytes.Buffer{}, logger)
	table := rules.New(rules.Rule{From: "a", To: "b"})

	tests := []struct {
		name    string
		cfg     rewrite.Config
		printer *status.Printer
	}{
		{
			name:    "missing_root",
			cfg:     rewrite.Config{Extension: ".kt", Table: table},
			printer: printer,
		},
		{
			name:    "missing_extension",
			cfg:     rewrite.Config{Root: ".", Table: table},
			printer: printer,
		},
		{
			name:    "missing_table",
			cfg:     rewrite.Config{Root: ".", Extension: ".kt"},
			printer: printer,
		},
		{
			name:    "missing_printer",
			cfg:     rewrite.Config{Root: ".", Extension: ".kt", Table: table},
			printer: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rewrite.New(tt.cfg, tt.printer)
			require.Error(t, err)
		})
	}
}

func TestErrors_Unwrap(t *testing.T) {
	readErr := &rewrite.ReadError{Path: "a.kt", Err: os.ErrPermission}
	require.ErrorIs(t, readErr, os.ErrPermission)
	assert.Contains(t, readErr.Error(), "a.kt")

	writeErr := &rewrite.WriteError{Path: "b.kt", Err: os.ErrPermission}
	require.ErrorIs(t, writeErr, os.ErrPermission)
	assert.Contains(t, writeErr.Error(), "b.kt")
}
