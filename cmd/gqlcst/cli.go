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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Output modes.
const (
	modeTree        = "tree"
	modeTokens      = "tokens"
	modeDiagnostics = "diagnostics"
)

// config is the CLI's configuration. It may be loaded from a YAML file, and
// any flag given on the command line overrides the file.
type config struct {
	Mode           string `yaml:"mode"`
	Compact        bool   `yaml:"compact"`
	Color          bool   `yaml:"color"`
	RecursionLimit int    `yaml:"recursion_limit"`
	TokenLimit     int    `yaml:"token_limit"`
	LogLevel       string `yaml:"log_level"`
	Jobs           int    `yaml:"jobs"`
}

func defaultConfig() config {
	return config{
		Mode:     modeTree,
		LogLevel: "info",
		Jobs:     runtime.GOMAXPROCS(0),
	}
}

// command is a fully parsed invocation.
type command struct {
	config
	// Glob patterns of files to parse. "-" means standard input.
	patterns []string
}

var errUsage = errors.New("usage error")

// parseArgs parses the command line. Usage information and flag errors are
// written to w.
func parseArgs(w io.Writer, args []string) (command, error) {
	name := "gqlcst"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}

	cmd := command{config: defaultConfig()}
	var flagCfg config
	var configPath string

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fmt.Sprintf("usage: %s [flags] <glob>...", name),
			"",
			"Parses GraphQL documents and prints their concrete syntax trees.",
			`A glob of "-" reads a document from standard input.`,
			"",
			"flags:",
		)
		flags.PrintDefaults()
	}

	flags.StringVar(&configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&flagCfg.Mode, "mode", cmd.Mode, "what to print: tree, tokens or diagnostics")
	flags.BoolVar(&flagCfg.Compact, "compact", cmd.Compact, "print one line per diagnostic")
	flags.BoolVar(&flagCfg.Color, "color", cmd.Color, "colorize diagnostics")
	flags.IntVar(&flagCfg.RecursionLimit, "recursion-limit", cmd.RecursionLimit, "maximum nesting depth; 0 for the default, negative for none")
	flags.IntVar(&flagCfg.TokenLimit, "token-limit", cmd.TokenLimit, "maximum tokens per document; 0 for none")
	flags.StringVar(&flagCfg.LogLevel, "log-level", cmd.LogLevel, "log level: debug, info, warn or error")
	flags.IntVar(&flagCfg.Jobs, "jobs", cmd.Jobs, "number of documents to parse in parallel")

	if err := flags.Parse(args); err != nil {
		// flags has already printed the problem and the usage.
		return cmd, errUsage
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cmd, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cmd.config); err != nil {
			return cmd, fmt.Errorf("parsing config %q: %w", configPath, err)
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cmd.Mode = flagCfg.Mode
		case "compact":
			cmd.Compact = flagCfg.Compact
		case "color":
			cmd.Color = flagCfg.Color
		case "recursion-limit":
			cmd.RecursionLimit = flagCfg.RecursionLimit
		case "token-limit":
			cmd.TokenLimit = flagCfg.TokenLimit
		case "log-level":
			cmd.LogLevel = flagCfg.LogLevel
		case "jobs":
			cmd.Jobs = flagCfg.Jobs
		}
	})

	switch cmd.Mode {
	case modeTree, modeTokens, modeDiagnostics:
	default:
		writeLines(w, fmt.Sprintf("unknown mode %q", cmd.Mode))
		flags.Usage()
		return cmd, errUsage
	}
	if cmd.Jobs < 1 {
		cmd.Jobs = 1
	}

	cmd.patterns = flags.Args()
	if len(cmd.patterns) == 0 {
		flags.Usage()
		return cmd, errUsage
	}
	return cmd, nil
}

func writeLines(w io.Writer, lines ...string) {
	for _, line := range lines {
		_, _ = io.WriteString(w, line)
		_, _ = io.WriteString(w, "\n")
	}
}
