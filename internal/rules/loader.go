// Package rules loads user-defined parsing rules from YAML files and
// registers them into a parser registry. Rule files let users teach hisab
// new bank formats, merchant normalizations, and category keywords without
// rebuilding.
package rules

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hisab-cli/hisab/internal/parser"
)

// File is a parsed rules file.
//
//	banks:
//	  - name: mybank
//	    patterns:
//	      amount: 'SAR ([0-9.]+)()'
//	merchants:
//	  - pattern: 'my coffee'
//	    name: My Coffee
//	    category: Food & Dining
//	categories:
//	  - keywords: [gym, نادي]
//	    category: Health
//	    priority: 60
type File struct {
	Banks      []BankEntry     `yaml:"banks"`
	Merchants  []MerchantEntry `yaml:"merchants"`
	Categories []CategoryEntry `yaml:"categories"`
}

// BankEntry registers one bank format.
type BankEntry struct {
	Patterns PatternEntry `yaml:"patterns"`
	Name     string       `yaml:"name"`
}

// PatternEntry holds the raw field patterns of a bank format.
type PatternEntry struct {
	Extra       map[string]string `yaml:"extra"`
	Description string            `yaml:"description"`
	Amount      string            `yaml:"amount"`
	Merchant    string            `yaml:"merchant"`
	Card        string            `yaml:"card"`
	Account     string            `yaml:"account"`
	Date        string            `yaml:"date"`
}

// MerchantEntry registers one merchant normalization rule.
type MerchantEntry struct {
	Pattern  string `yaml:"pattern"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// CategoryEntry registers one category keyword rule.
type CategoryEntry struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Priority *int     `yaml:"priority"`
}

// Load reads and decodes a rules file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return &f, nil
}

// Apply registers every entry into the registry. Entries are validated by
// the registry itself; all rejections are collected so one bad entry does
// not block the rest of the file.
func (f *File) Apply(reg *parser.Registry) error {
	var errs []error

	for _, b := range f.Banks {
		spec := parser.PatternSpec{
			Description: b.Patterns.Description,
			Amount:      b.Patterns.Amount,
			Merchant:    b.Patterns.Merchant,
			Card:        b.Patterns.Card,
			Account:     b.Patterns.Account,
			Date:        b.Patterns.Date,
			Extra:       b.Patterns.Extra,
		}
		if err := reg.AddBankPattern(b.Name, spec); err != nil {
			errs = append(errs, fmt.Errorf("bank %q: %w", b.Name, err))
		}
	}

	for _, m := range f.Merchants {
		if err := reg.AddMerchantPattern(m.Pattern, m.Name, m.Category); err != nil {
			errs = append(errs, fmt.Errorf("merchant %q: %w", m.Name, err))
		}
	}

	for _, c := range f.Categories {
		priority := parser.DefaultCategoryPriority
		if c.Priority != nil {
			priority = *c.Priority
		}
		if err := reg.AddCategoryRule(c.Keywords, c.Category, priority); err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", c.Category, err))
		}
	}

	return errors.Join(errs...)
}

// Check validates a rules file against a throwaway registry without
// touching the given one.
func (f *File) Check() error {
	return f.Apply(parser.NewRegistry())
}
