// Copyright 2026 The Tyche Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// logLevelFlag is the CLI --log-level flag value.
var logLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "tyche",
	Short: "Tyche - probability distribution toolkit",
	Long: `Tyche samples from parametric probability distributions (normal, lognormal,
gamma, beta), evaluates their densities, CDFs and quantiles, and summarizes
drawn samples. Reports are printed to stdout as JSON; logs go to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn or error (default: info)")
}

// resolveLogLevel determines the effective log level.
// Precedence: CLI flag > TYCHE_LOG_LEVEL env var > info.
func resolveLogLevel() slog.Level {
	name := logLevelFlag
	if name == "" {
		name = os.Getenv("TYCHE_LOG_LEVEL")
	}
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupLogging() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: resolveLogLevel(),
	})
	slog.SetDefault(slog.New(handler))
}

// parseParams converts repeated --param name=value flags into a parameter
// map.
func parseParams(pairs []string) (map[string]float64, error) {
	params := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed --param %q, want name=value", pair)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed --param %q: %w", pair, err)
		}
		if _, dup := params[name]; dup {
			return nil, fmt.Errorf("--param %q given twice", name)
		}
		params[name] = v
	}
	return params, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Println(string(out))
	return err
}
