package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "short dashed date expands the year",
			raw:  "08-06-25",
			want: "2025-06-08",
		},
		{
			name: "slashed date with full year",
			raw:  "08/06/2025",
			want: "2025-06-08",
		},
		{
			name: "four digit year with dashes passes through",
			raw:  "08-06-2025",
			want: "08-06-2025",
		},
		{
			name: "already normalized date passes through",
			raw:  "2025-06-08",
			want: "2025-06-08",
		},
		{
			name: "free text passes through",
			raw:  "yesterday",
			want: "yesterday",
		},
		{
			name: "missing date falls back to today",
			raw:  "",
			want: "2025-07-15",
		},
		{
			name: "whitespace only falls back to today",
			raw:  "   ",
			want: "2025-07-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDate(tt.raw, now))
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain decimal", raw: "21.99", want: 21.99},
		{name: "thousands separator", raw: "1,250.50", want: 1250.50},
		{name: "integer", raw: "300", want: 300},
		{name: "empty degrades to zero", raw: "", want: 0},
		{name: "garbage degrades to zero", raw: "abc", want: 0},
		{name: "negative degrades to zero", raw: "-5.00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizeAmount(tt.raw), 0.0001)
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "valid code kept", raw: "USD", want: "USD"},
		{name: "lowercase code uppercased", raw: "sar", want: "SAR"},
		{name: "arabic marker falls back", raw: "ر.س", want: "SAR"},
		{name: "empty falls back", raw: "", want: "SAR"},
		{name: "too long falls back", raw: "RIYAL", want: "SAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCurrency(tt.raw))
		})
	}
}

func TestMaskAccount(t *testing.T) {
	tests := []struct {
		name    string
		card    string
		account string
		want    string
	}{
		{name: "card and account", card: "3180*", account: "0165*", want: "3180* / 0165*"},
		{name: "card only", card: "3180*", account: "", want: "3180*"},
		{name: "account only", card: "", account: "0165*", want: "0165*"},
		{name: "neither", card: "", account: "", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskAccount(tt.card, tt.account))
		})
	}
}

func TestNormalizeMerchant(t *testing.T) {
	rules := defaultMerchantRules()

	tests := []struct {
		name     string
		raw      string
		fullText string
		want     string
	}{
		{
			name: "reference code stripped and rule applied",
			raw:  "Spotify AB P3781C3C72",
			want: "Spotify",
		},
		{
			name: "already normalized name is unchanged",
			raw:  "Spotify",
			want: "Spotify",
		},
		{
			name: "unknown merchant keeps cleaned text",
			raw:  "Corner Bakery X9Y8Z7Q6W5",
			want: "Corner Bakery",
		},
		{
			name: "cleaning that erases everything keeps the raw value",
			raw:  "A1B2C3D4E5",
			want: "A1B2C3D4E5",
		},
		{
			name:     "indicator token fallback",
			raw:      "",
			fullText: "payment received\nfrom Blue Bottle Coffee\nref 12",
			want:     "Blue Bottle Coffee",
		},
		{
			name:     "capitalized token fallback",
			raw:      "",
			fullText: "تم الشراء Panda Retail عملية ناجحة",
			want:     "Panda",
		},
		{
			name:     "nothing extractable",
			raw:      "",
			fullText: "something happened",
			want:     UnknownMerchant,
		},
		{
			name: "empty everything",
			raw:  "",
			want: UnknownMerchant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeMerchant(tt.raw, tt.fullText, rules))
		})
	}
}

func TestCleanMerchantCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "Blue Bottle", cleanMerchant("  Blue \t Bottle  "))
}
