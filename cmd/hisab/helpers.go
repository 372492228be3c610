package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hisab-cli/hisab/internal/config"
	"github.com/hisab-cli/hisab/internal/parser"
	"github.com/hisab-cli/hisab/internal/rules"
)

// newParser builds a parser with the built-in rules plus, when configured,
// the user's rules file. Individual bad entries in the rules file are
// logged and skipped so one typo does not disable the whole file.
func newParser() *parser.Parser {
	registry := parser.NewDefaultRegistry()

	if path := config.RulesFile(); path != "" {
		file, err := rules.Load(path)
		if err != nil {
			slog.Warn("Skipping rules file", "path", path, "error", err)
		} else if err := file.Apply(registry); err != nil {
			slog.Warn("Some rules were rejected", "path", path, "error", err)
		}
	}

	return parser.New(registry)
}

// readMessage resolves the message text for single-message commands: an
// argument, a file, or stdin, in that order.
func readMessage(args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := os.ReadFile(config.ExpandPath(file))
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
