package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hisab-cli/hisab/internal/common"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a spending category from text",
		Long: `Classify a transaction description (and optional merchant) into a
spending category using the current category and merchant rule tables.

Examples:
  hisab classify --description "شراء إنترنت" --merchant Spotify
  hisab classify --description "POS Purchase at PANDA 034"`,
		RunE: runClassify,
	}

	cmd.Flags().StringP("description", "d", "", "transaction description (required)")
	cmd.Flags().StringP("merchant", "m", "", "merchant name")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	description, _ := cmd.Flags().GetString("description")
	merchant, _ := cmd.Flags().GetString("merchant")

	if description == "" {
		return common.NewUserError("a description is required", common.ErrEmptyInput)
	}

	fmt.Println(newParser().ClassifyCategory(description, merchant))
	return nil
}
