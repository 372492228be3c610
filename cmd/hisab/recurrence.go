package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hisab-cli/hisab/internal/config"
	"github.com/hisab-cli/hisab/internal/model"
)

func recurrenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurrence",
		Short: "Check whether a payment looks recurring",
		Long: `Check a payment for recurrence. Without --history this uses the keyword
heuristic only. With --history (a JSON array of previously parsed
transactions, as emitted by "hisab parse --json") the decision is made
statistically from the payment intervals to the same merchant.

Examples:
  hisab recurrence --merchant Spotify --amount 21.99
  hisab recurrence --merchant Spotify --amount 21.99 --history history.json`,
		RunE: runRecurrence,
	}

	cmd.Flags().StringP("merchant", "m", "", "merchant name (required)")
	cmd.Flags().Float64P("amount", "a", 0, "transaction amount")
	cmd.Flags().StringP("description", "d", "", "transaction description")
	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().String("history", "", "JSON file of previously parsed transactions")
	_ = cmd.MarkFlagRequired("merchant")

	return cmd
}

func runRecurrence(cmd *cobra.Command, _ []string) error {
	merchant, _ := cmd.Flags().GetString("merchant")
	amount, _ := cmd.Flags().GetFloat64("amount")
	description, _ := cmd.Flags().GetString("description")
	date, _ := cmd.Flags().GetString("date")
	historyFile, _ := cmd.Flags().GetString("history")

	p := newParser()

	var result model.Recurrence
	if historyFile == "" {
		result = p.DetectRecurrence(merchant, amount, description)
	} else {
		history, err := readHistory(config.ExpandPath(historyFile))
		if err != nil {
			return err
		}
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		current := model.Transaction{Merchant: merchant, Amount: amount, Date: date, Description: description}
		result = p.DetectRecurrenceWithHistory(current, history)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func readHistory(path string) ([]model.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	var history []model.Transaction
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse history file %s: %w", path, err)
	}
	return history, nil
}
