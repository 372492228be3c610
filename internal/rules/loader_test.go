package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisab-cli/hisab/internal/common"
	"github.com/hisab-cli/hisab/internal/parser"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAndApply(t *testing.T) {
	path := writeRules(t, `
banks:
  - name: neobank
    patterns:
      description: '\A([^\n]+)'
      amount: 'charged ([0-9.]+) ([A-Z]{3})'
      merchant: 'by ([^\n]+)'
      extra:
        reference: 'ref ([A-Z0-9]+)'
merchants:
  - pattern: 'corner bakery'
    name: Corner Bakery
    category: Food & Dining
categories:
  - keywords: [gym, نادي]
    category: Health
    priority: 60
  - keywords: [padel]
    category: Sports
`)

	file, err := Load(path)
	require.NoError(t, err)

	reg := parser.NewRegistry()
	require.NoError(t, file.Apply(reg))

	assert.Equal(t, []string{"neobank"}, reg.BankFormats())

	merchants := reg.MerchantRules()
	require.Len(t, merchants, 1)
	assert.Equal(t, "Corner Bakery", merchants[0].Name)

	categories := reg.CategoryRules()
	require.Len(t, categories, 2)
	assert.Equal(t, 60, categories[0].Priority)
	// Omitted priority falls back to the default.
	assert.Equal(t, parser.DefaultCategoryPriority, categories[1].Priority)
}

func TestApplyCollectsBadEntriesWithoutBlockingGoodOnes(t *testing.T) {
	path := writeRules(t, `
banks:
  - name: broken
    patterns:
      merchant: '(unclosed'
merchants:
  - pattern: 'ok merchant'
    name: OK Merchant
categories:
  - keywords: []
    category: Empty
`)

	file, err := Load(path)
	require.NoError(t, err)

	reg := parser.NewRegistry()
	err = file.Apply(reg)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidPattern)
	assert.ErrorIs(t, err, common.ErrInvalidRule)

	// The valid merchant rule still landed.
	assert.Len(t, reg.MerchantRules(), 1)
	assert.Empty(t, reg.BankFormats())
	assert.Empty(t, reg.CategoryRules())
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeRules(t, "banks: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestCheckDoesNotTouchRegistry(t *testing.T) {
	path := writeRules(t, `
categories:
  - keywords: [gym]
    category: Health
`)

	file, err := Load(path)
	require.NoError(t, err)
	assert.NoError(t, file.Check())
}
