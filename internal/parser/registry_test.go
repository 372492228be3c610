package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisab-cli/hisab/internal/common"
)

func TestAddBankPatternValidation(t *testing.T) {
	tests := []struct {
		name    string
		spec    PatternSpec
		bank    string
		wantErr error
	}{
		{
			name:    "uncompilable pattern rejected",
			bank:    "broken",
			spec:    PatternSpec{Merchant: `(unclosed`},
			wantErr: common.ErrInvalidPattern,
		},
		{
			name:    "pattern without capture group rejected",
			bank:    "groupless",
			spec:    PatternSpec{Merchant: `merchant`},
			wantErr: common.ErrInvalidPattern,
		},
		{
			name:    "amount needs value and currency groups",
			bank:    "one-group-amount",
			spec:    PatternSpec{Amount: `([0-9.]+)`},
			wantErr: common.ErrInvalidPattern,
		},
		{
			name:    "invalid extra pattern rejected",
			bank:    "bad-extra",
			spec:    PatternSpec{Description: `(x)`, Extra: map[string]string{"reference": `[`}},
			wantErr: common.ErrInvalidPattern,
		},
		{
			name:    "empty name rejected",
			bank:    "  ",
			spec:    PatternSpec{Description: `(x)`},
			wantErr: common.ErrInvalidRule,
		},
		{
			name:    "reserved generic name rejected",
			bank:    "generic",
			spec:    PatternSpec{Description: `(x)`},
			wantErr: common.ErrInvalidRule,
		},
		{
			name:    "no patterns at all rejected",
			bank:    "empty",
			spec:    PatternSpec{},
			wantErr: common.ErrInvalidRule,
		},
		{
			name: "valid set accepted",
			bank: "mybank",
			spec: PatternSpec{
				Amount:   `([0-9.]+) ([A-Z]{3})`,
				Merchant: `at ([^\n]+)`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.AddBankPattern(tt.bank, tt.spec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, reg.BankFormats())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.bank}, reg.BankFormats())
		})
	}
}

func TestAddBankPatternReplacesExisting(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.AddBankPattern("mybank", PatternSpec{Description: `(old)`}))
	require.NoError(t, reg.AddBankPattern("mybank", PatternSpec{Description: `(new)`}))

	assert.Equal(t, []string{"mybank"}, reg.BankFormats())
	res := matchFormats(reg.snapshot().banks, "new")
	assert.Equal(t, "mybank", res.format)
	assert.Equal(t, "new", res.fields["description"])
}

func TestAddMerchantPatternValidation(t *testing.T) {
	reg := NewRegistry()

	assert.ErrorIs(t, reg.AddMerchantPattern(`(bad`, "Bad", ""), common.ErrInvalidPattern)
	assert.ErrorIs(t, reg.AddMerchantPattern(`ok`, "", ""), common.ErrInvalidRule)

	require.NoError(t, reg.AddMerchantPattern(`corner bakery`, "Corner Bakery", "Food & Dining"))
	rules := reg.MerchantRules()
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Pattern.MatchString("CORNER BAKERY 12"))
}

func TestAddCategoryRuleValidation(t *testing.T) {
	reg := NewRegistry()

	assert.ErrorIs(t, reg.AddCategoryRule([]string{"gym"}, "", 50), common.ErrInvalidRule)
	assert.ErrorIs(t, reg.AddCategoryRule([]string{"gym"}, "Health", -1), common.ErrInvalidRule)
	assert.ErrorIs(t, reg.AddCategoryRule([]string{"", "  "}, "Health", 50), common.ErrInvalidRule)

	require.NoError(t, reg.AddCategoryRule([]string{" GYM ", "نادي"}, "Health", 60))
	rules := reg.CategoryRules()
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"gym", "نادي"}, rules[0].Keywords)
}

func TestRegistryRuleAdditionAffectsLaterParsesOnly(t *testing.T) {
	reg := NewDefaultRegistry()
	p := New(reg)

	before := p.ClassifyCategory("padel court session", "")
	assert.Equal(t, DefaultCategory, before)

	require.NoError(t, reg.AddCategoryRule([]string{"padel"}, "Sports", 60))

	after := p.ClassifyCategory("padel court session", "")
	assert.Equal(t, "Sports", after)
}

func TestRegistryConcurrentReadsAndWrites(t *testing.T) {
	reg := NewDefaultRegistry()
	p := New(reg)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = p.ParseTransaction("POS Purchase for 45.00 SAR at: STARBUCKS on: 08/06/2025")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			_ = reg.AddCategoryRule([]string{"kw"}, "Cat", 10)
			_ = reg.AddMerchantPattern(`some merchant`, "Some Merchant", "")
		}
	}()
	wg.Wait()

	assert.NotEmpty(t, reg.CategoryRules())
}
