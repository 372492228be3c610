package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hisab-cli/hisab/internal/cli"
	"github.com/hisab-cli/hisab/internal/config"
	"github.com/hisab-cli/hisab/internal/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate parsing rules",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesCheckCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the effective rule tables",
		Long: `List the bank formats, merchant rules, and category rules currently in
effect: the built-ins plus anything loaded from the configured rules file.`,
		RunE: runRulesList,
	}
}

func runRulesList(_ *cobra.Command, _ []string) error {
	registry := newParser().Registry()

	fmt.Println(cli.FormatTitle("Bank formats"))
	for _, name := range registry.BankFormats() {
		fmt.Printf("  %s\n", name)
	}

	merchants := registry.MerchantRules()
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Merchant rules (%d)", len(merchants))))
	for _, rule := range merchants {
		line := fmt.Sprintf("  %-20s %s", rule.Name, rule.Pattern.String())
		if rule.Category != "" {
			line += "  → " + rule.Category
		}
		fmt.Println(line)
	}

	categories := registry.CategoryRules()
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Priority > categories[j].Priority
	})
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Category rules (%d)", len(categories))))
	for _, rule := range categories {
		fmt.Printf("  [%3d] %-20s %s\n", rule.Priority, rule.Category, strings.Join(rule.Keywords, ", "))
	}

	return nil
}

func rulesCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a rules file without loading it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRulesCheck,
	}
	return cmd
}

func runRulesCheck(_ *cobra.Command, args []string) error {
	path := config.RulesFile()
	if len(args) > 0 {
		path = config.ExpandPath(args[0])
	}
	if path == "" {
		return fmt.Errorf("no rules file given and none configured")
	}

	file, err := rules.Load(path)
	if err != nil {
		return err
	}
	if err := file.Check(); err != nil {
		fmt.Println(cli.FormatError(fmt.Sprintf("%s has invalid entries:", path)))
		fmt.Println(err)
		return fmt.Errorf("rules file is invalid")
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s: %d bank(s), %d merchant(s), %d category rule(s)",
		path, len(file.Banks), len(file.Merchants), len(file.Categories))))
	return nil
}
