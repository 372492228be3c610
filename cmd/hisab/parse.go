package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hisab-cli/hisab/internal/cli"
	"github.com/hisab-cli/hisab/internal/common"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a single notification message",
		Long: `Parse one bank or wallet notification message into a structured
transaction. The message can be passed as an argument, with --file, or on
stdin.

Examples:
  hisab parse "POS Purchase for 45.00 SAR at: STARBUCKS on: 08/06/2025"
  hisab parse --file message.txt
  cat message.txt | hisab parse --json`,
		RunE: runParse,
	}

	cmd.Flags().StringP("file", "f", "", "read the message from a file")
	cmd.Flags().Bool("json", false, "emit JSON instead of a styled card")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	text, err := readMessage(args, file)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return common.NewUserError("no message to parse", common.ErrEmptyInput)
	}

	txn := newParser().ParseTransaction(text)

	if asJSON {
		data, err := json.MarshalIndent(txn, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode transaction: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(cli.RenderTransaction(txn))
	return nil
}
