package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/hisab-cli/hisab/internal/model"
)

// MaxBatchSize is the largest batch ParseBatch is designed for. The cap is
// enforced by callers before any parsing occurs; the core itself processes
// whatever it is handed.
const MaxBatchSize = 50

// Parser is the parsing engine. It is safe for concurrent use; every parse
// reads a consistent snapshot of the registry's rule tables.
type Parser struct {
	registry *Registry
	now      func() time.Time
}

// New returns a parser backed by the given registry.
func New(registry *Registry) *Parser {
	return &Parser{registry: registry, now: time.Now}
}

// Registry exposes the rule tables for runtime registration.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// ParseTransaction extracts a structured transaction from one notification
// message. It never fails: missing or malformed fields degrade to
// documented defaults (amount 0, currency SAR, merchant "Unknown Merchant",
// account "N/A", today's date, category "Other").
func (p *Parser) ParseTransaction(rawText string) model.Transaction {
	snap := p.registry.snapshot()

	match := matchFormats(snap.banks, rawText)
	fields := match.fields

	description := strings.TrimSpace(fields["description"])
	if description == "" {
		description = strings.TrimSpace(rawText)
	}

	merchant := normalizeMerchant(fields["merchant"], rawText, snap.merchants)
	amount := normalizeAmount(fields["amount"])
	currency := normalizeCurrency(fields["currency"])
	date := normalizeDate(fields["date"], p.now())
	category := classifyCategory(description, merchant, snap.categories, snap.merchants)
	recurrence := detectRecurrence(merchant, amount, description)

	return model.Transaction{
		Description:   description,
		Amount:        amount,
		Currency:      currency,
		Merchant:      merchant,
		AccountMasked: maskAccount(fields["card"], fields["account"]),
		Date:          date,
		Category:      category,
		Recurrence:    recurrence,
		RawText:       rawText,
		BankFormat:    match.format,
	}
}

// ClassifyCategory classifies free-form description and merchant text
// against the current category and merchant rule tables.
func (p *Parser) ClassifyCategory(description, merchant string) string {
	snap := p.registry.snapshot()
	return classifyCategory(description, merchant, snap.categories, snap.merchants)
}

// DetectRecurrence runs the history-free keyword heuristic.
func (p *Parser) DetectRecurrence(merchant string, amount float64, description string) model.Recurrence {
	return detectRecurrence(merchant, amount, description)
}

// DetectRecurrenceWithHistory runs interval analysis over previously parsed
// transactions for the same merchant.
func (p *Parser) DetectRecurrenceWithHistory(current model.Transaction, history []model.Transaction) model.Recurrence {
	return detectRecurrenceWithHistory(current, history)
}

// BatchItem is the per-message outcome of a batch parse.
type BatchItem struct {
	Err         error             `json:"-"`
	Error       string            `json:"error,omitempty"`
	Transaction model.Transaction `json:"transaction"`
	Index       int               `json:"index"`
}

// ParseBatch parses messages independently and in order. A failure in one
// item never aborts its siblings; internal panics are confined to the item
// that raised them.
func (p *Parser) ParseBatch(texts []string) []BatchItem {
	items := make([]BatchItem, len(texts))
	for i, text := range texts {
		items[i] = BatchItem{Index: i}
		items[i].Transaction, items[i].Err = p.parseOne(text)
		if items[i].Err != nil {
			items[i].Error = items[i].Err.Error()
		}
	}
	return items
}

func (p *Parser) parseOne(text string) (txn model.Transaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse failed: %v", r)
		}
	}()
	return p.ParseTransaction(text), nil
}
