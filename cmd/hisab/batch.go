package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/hisab-cli/hisab/internal/cli"
	"github.com/hisab-cli/hisab/internal/common"
	"github.com/hisab-cli/hisab/internal/config"
	"github.com/hisab-cli/hisab/internal/parser"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse a file of notification messages",
		Long: fmt.Sprintf(`Parse a file of notification messages, one message per non-blank line.

At most %d messages are accepted per run; larger files are rejected before
any parsing starts. A message that fails to parse is reported individually
and never aborts its siblings.`, parser.MaxBatchSize),
		RunE: runBatch,
	}

	cmd.Flags().StringP("file", "f", "", "messages file, one message per line (required)")
	cmd.Flags().Bool("json", false, "emit a JSON array instead of styled cards")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBatch(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	messages, err := readBatchFile(config.ExpandPath(file))
	if err != nil {
		return err
	}

	p := newParser()

	bar := progressbar.NewOptions(len(messages),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Parsing messages..."),
	)

	items := parseAll(p, messages, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}

	if asJSON {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, item := range items {
		if item.Err != nil {
			fmt.Println(cli.FormatError(fmt.Sprintf("message %d: %v", item.Index+1, item.Err)))
			continue
		}
		fmt.Println(cli.RenderTransaction(item.Transaction))
	}
	fmt.Println(cli.RenderBatchSummary(len(items), failed))
	return nil
}

// parseAll parses one message at a time, invoking progress after each
// completed item. Per-message failure isolation is preserved.
func parseAll(p *parser.Parser, messages []string, progress func()) []parser.BatchItem {
	items := make([]parser.BatchItem, 0, len(messages))
	for i, msg := range messages {
		item := p.ParseBatch([]string{msg})[0]
		item.Index = i
		items = append(items, item)
		if progress != nil {
			progress()
		}
	}
	return items
}

// readBatchFile reads one message per non-blank line and enforces the batch
// cap before anything is parsed.
func readBatchFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open messages file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var messages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			messages = append(messages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}

	return capBatch(messages)
}

func capBatch(messages []string) ([]string, error) {
	if len(messages) == 0 {
		return nil, common.NewUserError("messages file is empty", common.ErrEmptyInput)
	}
	if len(messages) > parser.MaxBatchSize {
		return nil, common.NewUserError(
			fmt.Sprintf("batch has %d messages, maximum is %d", len(messages), parser.MaxBatchSize),
			common.ErrBatchTooLarge)
	}
	return messages, nil
}
