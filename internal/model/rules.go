package model

import "regexp"

// BankFormat identifies a registered notification format. The well-known
// Saudi banks and wallets are enumerated below; custom registrations may use
// any other identifier.
type BankFormat string

// Built-in bank and wallet format identifiers.
const (
	BankAlRajhi  BankFormat = "alrajhi"
	BankAlAhli   BankFormat = "alahli"
	BankRiyad    BankFormat = "riyad"
	BankAlinma   BankFormat = "alinma"
	BankSAB      BankFormat = "sab"
	WalletSTCPay BankFormat = "stcpay"
	WalletURPay  BankFormat = "urpay"

	// FormatGeneric is reported when no registered format matched anything.
	FormatGeneric BankFormat = "generic"
)

// PatternSet holds the compiled field-extraction patterns for one bank
// format. Every pattern is optional; each captures the field value in its
// first group, except Amount which captures the value in group one and an
// optional currency code in group two. A PatternSet is immutable once
// registered.
type PatternSet struct {
	Description *regexp.Regexp
	Amount      *regexp.Regexp
	Merchant    *regexp.Regexp
	Card        *regexp.Regexp
	Account     *regexp.Regexp
	Date        *regexp.Regexp

	// Extra holds bank-specific fields (reference, branch, terminal, ...)
	// keyed by field name.
	Extra map[string]*regexp.Regexp
}

// FieldCount returns the number of fields this set defines for confidence
// scoring. The amount pattern counts as two fields (value and currency), so
// a fully matched set always scores 1.0.
func (s PatternSet) FieldCount() int {
	n := 0
	for _, re := range []*regexp.Regexp{s.Description, s.Merchant, s.Card, s.Account, s.Date} {
		if re != nil {
			n++
		}
	}
	if s.Amount != nil {
		n += 2
	}
	return n + len(s.Extra)
}

// MerchantRule maps a merchant pattern to its canonical display name and,
// optionally, a spending category. Rules apply in registration order; the
// first match wins.
type MerchantRule struct {
	Pattern  *regexp.Regexp
	Name     string
	Category string
}

// CategoryRule assigns a category when any of its lowercase keywords occurs
// in the transaction text. Rules evaluate in descending Priority order;
// registration order breaks ties.
type CategoryRule struct {
	Keywords []string
	Category string
	Priority int
}
