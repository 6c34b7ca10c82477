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

// Package status renders operator-facing feedback for a rewrite run.
package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
)

// 📢 Printer writes user-facing run feedback to a console
type Printer struct {
	console io.Writer
	log     zerolog.Logger
}

// 🏭 NewPrinter creates a printer writing to console
func NewPrinter(console io.Writer, log zerolog.Logger) *Printer {
	return &Printer{
		console: console,
		log:     log,
	}
}

// 🎯 FormatFileLine formats the per-file line for a rewritten file
func FormatFileLine(name string, replacements int) string {
	prefix := color.BlueString("⟳")
	namePart := fmt.Sprintf("%-*s", nameWidth, name)

	line := fmt.Sprintf("%s%s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
	)
	if replacements > 0 {
		line += color.HiBlackString(" %d replacements", replacements)
	}
	return line
}

// 📝 FileUpdated reports a file that was rewritten
func (p *Printer) FileUpdated(name string, replacements int) {
	fmt.Fprintln(p.console, FormatFileLine(name, replacements))
	p.log.Info().Str("file", name).Int("replacements", replacements).Msg("updated")
}

// ❌ FileError reports a per-file failure; the run continues past it
func (p *Printer) FileError(name string, err error) {
	pterm.Error.WithWriter(p.console).Printfln("%s: %v", name, err)
	p.log.Error().Err(err).Str("file", name).Msg("file failed")
}

// 📊 Summary prints the final report: the count of updated files,
// then one identifier per line
func (p *Printer) Summary(updated []string, failed int) {
	fmt.Fprintf(p.console, "Updated %d files\n", len(updated))
	for _, name := range updated {
		fmt.Fprintf(p.console, "  - %s\n", name)
	}
	if failed > 0 {
		pterm.Warning.WithWriter(p.console).Printfln("%d files failed", failed)
	}
}
