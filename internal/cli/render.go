package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hisab-cli/hisab/internal/model"
)

// RenderTransaction renders a parsed transaction as a bordered card.
func RenderTransaction(txn model.Transaction) string {
	rows := []string{
		row("Merchant", txn.Merchant),
		row("Amount", fmt.Sprintf("%.2f %s", txn.Amount, txn.Currency)),
		row("Category", txn.Category),
		row("Date", txn.Date),
		row("Account", txn.AccountMasked),
		row("Format", txn.BankFormat),
	}
	if txn.Recurrence.IsRecurring {
		rows = append(rows, row("Recurring", fmt.Sprintf("%s (%.0f%% confidence)",
			txn.Recurrence.Period, txn.Recurrence.Confidence*100)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	title := TitleStyle.Render(truncate(txn.Description, 48))
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// RenderBatchSummary renders counts after a batch parse.
func RenderBatchSummary(total, failed int) string {
	if failed == 0 {
		return FormatSuccess(fmt.Sprintf("parsed %d message(s)", total))
	}
	return FormatWarning(fmt.Sprintf("parsed %d message(s), %d failed", total-failed, failed))
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		LabelStyle.Render(label),
		ValueStyle.Render(value),
	)
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
