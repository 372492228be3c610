// Package parser extracts structured transactions from Saudi bank and
// wallet notification text. It matches every registered bank format against
// the input, normalizes the extracted fields, classifies the spending
// category, and flags likely recurring payments.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/hisab-cli/hisab/internal/common"
	"github.com/hisab-cli/hisab/internal/model"
)

// DefaultCategoryPriority is used when a category rule is registered
// without an explicit priority.
const DefaultCategoryPriority = 50

// PatternSpec is the raw (uncompiled) form of a bank pattern set, as
// supplied by callers registering a new format. Empty fields are omitted
// from the resulting set.
type PatternSpec struct {
	Description string
	Amount      string
	Merchant    string
	Card        string
	Account     string
	Date        string
	Extra       map[string]string
}

type bankEntry struct {
	name string
	set  model.PatternSet
}

// Registry owns the three mutable rule tables: bank pattern sets, merchant
// rules, and category rules. Parses read a consistent snapshot under a
// read lock; registration takes the write lock, so rule changes never
// affect a parse already in flight.
type Registry struct {
	bankIndex  map[string]int
	banks      []bankEntry // registration order; the matcher tie-break
	merchants  []model.MerchantRule
	categories []model.CategoryRule
	mu         sync.RWMutex
}

// NewRegistry returns an empty registry. Most callers want
// NewDefaultRegistry instead.
func NewRegistry() *Registry {
	return &Registry{bankIndex: make(map[string]int)}
}

// NewDefaultRegistry returns a registry pre-loaded with the built-in Saudi
// bank formats, merchant rules, and category rules.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, b := range defaultBankPatterns() {
		r.registerBank(b.name, b.set)
	}
	r.mu.Lock()
	r.merchants = append(r.merchants, defaultMerchantRules()...)
	r.categories = append(r.categories, defaultCategoryRules()...)
	r.mu.Unlock()
	return r
}

// AddBankPattern compiles and registers a new bank format. Registering an
// already-known name replaces its pattern set. Invalid patterns are
// rejected here so parse time never sees them.
func (r *Registry) AddBankPattern(name string, spec PatternSpec) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: bank format name is required", common.ErrInvalidRule)
	}
	if name == string(model.FormatGeneric) {
		return fmt.Errorf("%w: %q is reserved for unmatched input", common.ErrInvalidRule, name)
	}

	set := model.PatternSet{}
	base := []struct {
		dst    **regexp.Regexp
		field  string
		raw    string
		groups int
	}{
		{&set.Description, "description", spec.Description, 1},
		{&set.Amount, "amount", spec.Amount, 2}, // value and currency groups
		{&set.Merchant, "merchant", spec.Merchant, 1},
		{&set.Card, "card", spec.Card, 1},
		{&set.Account, "account", spec.Account, 1},
		{&set.Date, "date", spec.Date, 1},
	}
	for _, f := range base {
		if f.raw == "" {
			continue
		}
		re, err := compileField(f.field, f.raw, f.groups)
		if err != nil {
			return err
		}
		*f.dst = re
	}
	for field, raw := range spec.Extra {
		re, err := compileField(field, raw, 1)
		if err != nil {
			return err
		}
		if set.Extra == nil {
			set.Extra = make(map[string]*regexp.Regexp, len(spec.Extra))
		}
		set.Extra[field] = re
	}
	if set.FieldCount() == 0 {
		return fmt.Errorf("%w: bank format %q defines no field patterns", common.ErrInvalidRule, name)
	}

	r.registerBank(name, set)
	return nil
}

func (r *Registry) registerBank(name string, set model.PatternSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.bankIndex[name]; ok {
		r.banks[i].set = set
		return
	}
	r.bankIndex[name] = len(r.banks)
	r.banks = append(r.banks, bankEntry{name: name, set: set})
}

// AddMerchantPattern appends a merchant normalization rule. The pattern is
// made case-insensitive unless it already carries an inline flag. Category
// may be empty for rules that only rename.
func (r *Registry) AddMerchantPattern(pattern, name, category string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: merchant name is required", common.ErrInvalidRule)
	}
	re, err := compileInsensitive(pattern)
	if err != nil {
		return fmt.Errorf("%w: merchant pattern %q: %v", common.ErrInvalidPattern, pattern, err)
	}
	r.mu.Lock()
	r.merchants = append(r.merchants, model.MerchantRule{Pattern: re, Name: name, Category: category})
	r.mu.Unlock()
	return nil
}

// AddCategoryRule appends a keyword rule. Keywords are lowercased; blank
// keywords are dropped. Priority must be >= 0.
func (r *Registry) AddCategoryRule(keywords []string, category string, priority int) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", common.ErrInvalidRule)
	}
	if priority < 0 {
		return fmt.Errorf("%w: priority must be >= 0, got %d", common.ErrInvalidRule, priority)
	}
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("%w: at least one keyword is required", common.ErrInvalidRule)
	}
	r.mu.Lock()
	r.categories = append(r.categories, model.CategoryRule{Keywords: cleaned, Category: category, Priority: priority})
	r.mu.Unlock()
	return nil
}

// BankFormats returns the registered format names in registration order.
func (r *Registry) BankFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.banks))
	for i, b := range r.banks {
		names[i] = b.name
	}
	return names
}

// MerchantRules returns a copy of the merchant rule table.
func (r *Registry) MerchantRules() []model.MerchantRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.MerchantRule, len(r.merchants))
	copy(out, r.merchants)
	return out
}

// CategoryRules returns a copy of the category rule table in registration
// order.
func (r *Registry) CategoryRules() []model.CategoryRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CategoryRule, len(r.categories))
	copy(out, r.categories)
	return out
}

// tables is a consistent point-in-time view of all three rule tables. The
// contained slices are never mutated after the snapshot is taken, so the
// whole parse pipeline runs lock-free over it.
type tables struct {
	banks      []bankEntry
	merchants  []model.MerchantRule
	categories []model.CategoryRule
}

func (r *Registry) snapshot() tables {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t := tables{
		banks:      make([]bankEntry, len(r.banks)),
		merchants:  make([]model.MerchantRule, len(r.merchants)),
		categories: make([]model.CategoryRule, len(r.categories)),
	}
	copy(t.banks, r.banks)
	copy(t.merchants, r.merchants)
	copy(t.categories, r.categories)
	return t
}

func compileField(field, raw string, minGroups int) (*regexp.Regexp, error) {
	re, err := regexp.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", common.ErrInvalidPattern, field, err)
	}
	if re.NumSubexp() < minGroups {
		return nil, fmt.Errorf("%w: field %q needs at least %d capturing group(s)", common.ErrInvalidPattern, field, minGroups)
	}
	return re, nil
}

func compileInsensitive(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is empty")
	}
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}
