package parser

import (
	"sort"
	"strings"

	"github.com/hisab-cli/hisab/internal/model"
)

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = "Other"

// classifyCategory assigns a spending category from the rule tables.
// Category rules are checked in descending priority (registration order on
// ties); the first keyword hit wins. Merchant rules that carry a category
// act as a fallback before the default.
func classifyCategory(description, merchant string, categories []model.CategoryRule, merchants []model.MerchantRule) string {
	haystack := strings.ToLower(description + " " + merchant)

	ordered := make([]model.CategoryRule, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for _, rule := range ordered {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(haystack, kw) {
				return rule.Category
			}
		}
	}

	for _, rule := range merchants {
		if rule.Category != "" && rule.Pattern.MatchString(haystack) {
			return rule.Category
		}
	}

	return DefaultCategory
}
