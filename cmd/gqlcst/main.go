// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command gqlcst parses GraphQL documents and prints their lossless
// concrete syntax trees, tokens or diagnostics.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	plog "github.com/phuslu/log"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/gqlsyntax/parser"
	"github.com/bufbuild/gqlsyntax/report"
	"github.com/bufbuild/gqlsyntax/syntax"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1 // Some document had errors.
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// result is a parsed document.
type result struct {
	path string
	out  *parser.Output
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd, err := parseArgs(stderr, args)
	if errors.Is(err, errUsage) {
		return exitUsage
	} else if err != nil {
		writeLines(stderr, err.Error())
		return exitUsage
	}

	log := plog.Logger{
		Level:      plog.ParseLevel(cmd.LogLevel),
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &plog.IOWriter{Writer: stderr},
	}

	paths, err := expand(cmd.patterns)
	if err != nil {
		log.Error().Err(err).Msg("expanding globs")
		return exitUsage
	}

	start := time.Now()
	results, err := parseAll(ctx, cmd, paths, stdin, &log)
	if err != nil {
		log.Error().Err(err).Msg("parsing")
		return exitError
	}

	var (
		all          report.Report
		bytes, toks  int
		diagnostics  = stderr
		printHeaders = len(results) > 1
	)
	for _, r := range results {
		all.Merge(r.out.Report())
		bytes += r.out.File().Len()
		toks += r.out.Limits().Tokens

		if printHeaders && cmd.Mode != modeDiagnostics {
			fmt.Fprintf(stdout, "== %s ==\n", r.path)
		}
		switch cmd.Mode {
		case modeTree:
			io.WriteString(stdout, syntax.Debug(r.out.Root()))
		case modeTokens:
			for tok := range r.out.Root().Tokens() {
				fmt.Fprintf(stdout, "%v@%d..%d %q\n", tok.Kind(), tok.Offset(), tok.End(), tok.Text())
			}
		case modeDiagnostics:
			diagnostics = stdout
		}
	}

	renderer := report.Renderer{Compact: cmd.Compact, Colorize: cmd.Color}
	errorCount, _, err := renderer.Render(&all, diagnostics)
	if err != nil {
		log.Error().Err(err).Msg("writing diagnostics")
		return exitError
	}

	log.Info().
		Int("files", len(results)).
		Str("size", humanize.Bytes(uint64(bytes))).
		Str("tokens", humanize.Comma(int64(toks))).
		Int("errors", errorCount).
		Dur("elapsed", time.Since(start)).
		Msg("parsed")

	if errorCount > 0 {
		return exitError
	}
	return exitOK
}

// expand expands glob patterns into file paths, preserving the order of the
// patterns. Each pattern must match at least one file.
func expand(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if pattern == "-" {
			paths = append(paths, pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		slices.Sort(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// parseAll reads and parses every path, up to cmd.Jobs at a time. The
// results are in the same order as paths.
func parseAll(ctx context.Context, cmd command, paths []string, stdin io.Reader, log *plog.Logger) ([]result, error) {
	var stdinText string
	if slices.Contains(paths, "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		stdinText = string(data)
	}

	p := parser.Parser{RecursionLimit: cmd.RecursionLimit, TokenLimit: cmd.TokenLimit}
	results := make([]result, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cmd.Jobs)
	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text := stdinText
			name := "<stdin>"
			if path != "-" {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %q: %w", path, err)
				}
				text, name = string(data), path
			}

			out := p.Parse(name, text)
			log.Debug().
				Str("file", name).
				Int("bytes", len(text)).
				Int("diagnostics", len(out.Errors())).
				Int("depth", out.Limits().MaxDepth).
				Msg("parsed file")
			results[i] = result{path: name, out: out}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
