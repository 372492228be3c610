package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hisab-cli/hisab/internal/model"
)

// UnknownMerchant is reported when no merchant could be extracted at all.
const UnknownMerchant = "Unknown Merchant"

// DefaultCurrency is assumed when the message carries no currency code.
const DefaultCurrency = "SAR"

var (
	// Runs of 8+ uppercase alphanumerics are transaction/reference codes
	// appended to merchant names (e.g. "Spotify AB P3781C3C72").
	codeRunRe    = regexp.MustCompile(`[A-Z0-9]{8,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	shortDateRe = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{2})$`)
	slashDateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	currencyRe  = regexp.MustCompile(`^[A-Z]{3}$`)

	// Preposition-like tokens that introduce the merchant when no merchant
	// pattern matched ("from X", "من X").
	merchantIndicatorRe = regexp.MustCompile(`(?i)(?:\bfrom\b|\bto\b|\bat\b|\bwith\b|من|إلى|الى|لدى|عند)\s+([^\n]+)`)
)

// normalizeMerchant derives the canonical merchant name. The matched raw
// value (or, failing that, text heuristically pulled from the full message)
// is cleaned of reference codes, then run through the merchant rule table;
// the first matching rule's name wins.
func normalizeMerchant(raw, fullText string, rules []model.MerchantRule) string {
	if strings.TrimSpace(raw) == "" {
		raw = extractMerchantFallback(fullText)
	}
	if strings.TrimSpace(raw) == "" {
		return UnknownMerchant
	}

	candidate := cleanMerchant(raw)
	if candidate == "" {
		// Cleaning can erase short all-caps names entirely; fall back to
		// the uncleaned value rather than losing the merchant.
		candidate = strings.TrimSpace(raw)
	}
	for _, rule := range rules {
		if rule.Pattern.MatchString(candidate) {
			return rule.Name
		}
	}
	if candidate == "" {
		return UnknownMerchant
	}
	return candidate
}

// cleanMerchant strips reference-code runs and collapses whitespace.
func cleanMerchant(raw string) string {
	cleaned := codeRunRe.ReplaceAllString(raw, " ")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// extractMerchantFallback recovers a merchant guess from the whole message
// when no merchant field matched: first the indicator-token heuristic, then
// joining capitalized tokens longer than two characters.
func extractMerchantFallback(text string) string {
	if m := merchantIndicatorRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	var parts []string
	for _, tok := range strings.Fields(text) {
		if len([]rune(tok)) > 2 && hasUpper(tok) {
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, " ")
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// maskAccount joins the masked card and account fragments as they appeared
// in the source text.
func maskAccount(card, account string) string {
	var parts []string
	for _, p := range []string{card, account} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, " / ")
}

// normalizeDate converts the two raw shapes Saudi notifications use,
// DD-MM-YY and DD/MM/YYYY, to YYYY-MM-DD. Other shapes pass through
// verbatim; some bank formats emit dates this function does not yet
// recognize, and downstream consumers see those unchanged. An absent date
// becomes the current date.
func normalizeDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format("2006-01-02")
	}
	if m := shortDateRe.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("20%s-%s-%s", m[3], m[2], m[1])
	}
	if m := slashDateRe.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
	}
	return raw
}

// normalizeAmount parses a raw amount, tolerating thousands separators.
// Unparsable input degrades to 0.
func normalizeAmount(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// normalizeCurrency upper-cases a captured currency code, falling back to
// SAR for anything that is not a 3-letter code (Arabic currency markers
// such as "ر.س" land here).
func normalizeCurrency(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !currencyRe.MatchString(code) {
		return DefaultCurrency
	}
	return code
}
