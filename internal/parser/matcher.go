package parser

import (
	"regexp"

	"github.com/hisab-cli/hisab/internal/model"
)

// matchResult is the outcome of trying every registered bank format
// against one message.
type matchResult struct {
	fields     map[string]string
	format     string
	confidence float64
}

// matchFormats scores each bank pattern set by field coverage and keeps the
// best. Every field pattern searches the whole text independently; fields
// are not order-dependent. Confidence is matched fields over defined
// fields, with the amount pattern counting as two (value and currency).
//
// Only a strictly greater confidence replaces the incumbent, so among equal
// scores the earliest-registered format wins. The zero-value incumbent is
// the generic format with an empty field map; callers must tolerate that.
func matchFormats(banks []bankEntry, text string) matchResult {
	best := matchResult{
		fields: map[string]string{},
		format: string(model.FormatGeneric),
	}

	for _, bank := range banks {
		fields, matched := extractFields(bank.set, text)
		total := bank.set.FieldCount()
		if total == 0 {
			continue
		}
		confidence := float64(matched) / float64(total)
		if confidence > best.confidence {
			best = matchResult{fields: fields, format: bank.name, confidence: confidence}
		}
	}

	return best
}

func extractFields(set model.PatternSet, text string) (map[string]string, int) {
	fields := make(map[string]string)
	matched := 0

	capture := func(name string, re *regexp.Regexp) {
		if re == nil {
			return
		}
		if m := re.FindStringSubmatch(text); m != nil && m[1] != "" {
			fields[name] = m[1]
			matched++
		}
	}

	capture("description", set.Description)
	capture("merchant", set.Merchant)
	capture("card", set.Card)
	capture("account", set.Account)
	capture("date", set.Date)

	if set.Amount != nil {
		if m := set.Amount.FindStringSubmatch(text); m != nil && m[1] != "" {
			fields["amount"] = m[1]
			if len(m) > 2 && m[2] != "" {
				fields["currency"] = m[2]
			}
			matched += 2
		}
	}

	for name, re := range set.Extra {
		capture(name, re)
	}

	return fields, matched
}
