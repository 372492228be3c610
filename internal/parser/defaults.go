package parser

import (
	"regexp"

	"github.com/hisab-cli/hisab/internal/model"
)

// Built-in formats cover the notification phrasing of the major Saudi banks
// and wallets. Registration order matters: when two formats score the same
// coverage, the earlier one wins, so the most specific formats come first.
func defaultBankPatterns() []bankEntry {
	return []bankEntry{
		{
			// Al Rajhi: Arabic, line-per-field.
			//   شراء إنترنت
			//   بـ 21.99 SAR
			//   من Spotify AB P3781C3C72
			//   مدى 3180*
			//   حساب 0165*
			//   في08-06-25
			name: string(model.BankAlRajhi),
			set: model.PatternSet{
				Description: regexp.MustCompile(`\A([^\n]+)`),
				Amount:      regexp.MustCompile(`(?:بـ|بمبلغ)\s*([0-9,]+(?:\.[0-9]+)?)\s*([A-Z]{3}|ر\.س|ريال)?`),
				Merchant:    regexp.MustCompile(`(?:من|لدى)\s+([^\n]+)`),
				Card:        regexp.MustCompile(`(?:مدى|بطاقة)\s*:?\s*([0-9*]+)`),
				Account:     regexp.MustCompile(`حساب\s*:?\s*([0-9*]+)`),
				Date:        regexp.MustCompile(`في\s*([0-9]{2}[-/][0-9]{2}[-/][0-9]{2,4})`),
			},
		},
		{
			// SNB/AlAhli: Arabic, colon-separated labels, DD/MM/YYYY dates.
			name: string(model.BankAlAhli),
			set: model.PatternSet{
				Description: regexp.MustCompile(`\A([^\n]+)`),
				Amount:      regexp.MustCompile(`مبلغ\s*:?\s*([0-9,]+(?:\.[0-9]+)?)\s*([A-Z]{3}|ر\.س)?`),
				Merchant:    regexp.MustCompile(`لدى\s*:?\s*([^\n]+)`),
				Card:        regexp.MustCompile(`بطاقة\s*:?\s*([0-9*]+)`),
				Account:     regexp.MustCompile(`حساب\s*:?\s*([0-9*]+)`),
				Date:        regexp.MustCompile(`في\s*:?\s*([0-9]{2}/[0-9]{2}/[0-9]{4})`),
				Extra: map[string]*regexp.Regexp{
					"reference": regexp.MustCompile(`رقم\s*(?:العملية|المرجع)\s*:?\s*([A-Z0-9]+)`),
				},
			},
		},
		{
			// Riyad Bank: English, "Amount: 250.00 SAR" style.
			name: string(model.BankRiyad),
			set: model.PatternSet{
				Description: regexp.MustCompile(`\A([^\n]+)`),
				Amount:      regexp.MustCompile(`(?i)amount\s*:?\s*([0-9,]+(?:\.[0-9]+)?)\s*([A-Z]{3})?`),
				Merchant:    regexp.MustCompile(`(?i)\bat\s*:?\s+([^\n]+)`),
				Card:        regexp.MustCompile(`(?i)card\s*(?:no\.?|ending)?\s*:?\s*([0-9*]+)`),
				Account:     regexp.MustCompile(`(?i)account\s*:?\s*([0-9*]+)`),
				Date:        regexp.MustCompile(`(?i)\bon\s*:?\s*([0-9]{2}/[0-9]{2}/[0-9]{4})`),
			},
		},
		{
			// Alinma: Arabic, DD-MM-YY dates, explicit terminal field on
			// POS purchases.
			name: string(model.BankAlinma),
			set: model.PatternSet{
				Description: regexp.MustCompile(`\A([^\n]+)`),
				Amount:      regexp.MustCompile(`(?:بمبلغ|قيمة)\s*:?\s*([0-9,]+(?:\.[0-9]+)?)\s*([A-Z]{3}|ريال)?`),
				Merchant:    regexp.MustCompile(`(?:من|لدى|عند)\s+([^\n]+)`),
				Card:        regexp.MustCompile(`بطاقة\s*:?\s*\*?([0-9*]+)`),
				Account:     regexp.MustCompile(`حساب\s*:?\s*([0-9*]+)`),
				Date:        regexp.MustCompile(`(?:بتاريخ|في)\s*:?\s*([0-9]{2}-[0-9]{2}-[0-9]{2,4})`),
				Extra: map[string]*regexp.Regexp{
					"terminal": regexp.MustCompile(`جهاز\s*:?\s*([0-9]+)`),
				},
			},
		},
		{
			// SAB: English, "POS Purchase ... for SAR" phrasing with the
			// value after the code.
			name: string(model.BankSAB),
			set: model.PatternSet{
				Description: regexp.MustCompile(`\A([^\n]+)`),
				Amount:      regexp.MustCompile(`(?i)for\s+([0-9,]+(?:\.[0-9]+)?)\s*([A-Z]{3})?`),
				Merchant:    regexp.MustCompile(`(?i)(?:merchant|from)\s*:?\s+([^\n]+)`),
				Card:        regexp.MustCompile(`(?i)card\s*(?:ending)?\s*:?\s*([0-9*Xx]+)`),
				Account:     regexp.MustCompile(`(?i)(?:account|acc)\s*:?\s*([0-9*Xx]+)`),
				Date:        regexp.MustCompile(`(?i)\bon\s*:?\s*([0-9]{2}/[0-9]{2}/[0-9]{4})`),
				Extra: map[string]*regexp.Regexp{
					"branch": regexp.MustCompile(`(?i)branch\s*:?\s*([A-Z0-9]+)`),
				},
			},
		},
		{
			// STC Pay wallet: short bilingual payment confirmations.
			name: string(model.WalletSTCPay),
			set: model.PatternSet{
				Description: regexp.MustCompile(`\A([^\n]+)`),
				Amount:      regexp.MustCompile(`(?i)(?:دفعت|paid|مبلغ)\s*:?\s*([0-9,]+(?:\.[0-9]+)?)\s*(SAR|ر\.س)?`),
				Merchant:    regexp.MustCompile(`(?i)(?:إلى|الى|\bto\b)\s+([^\n]+)`),
				Date:        regexp.MustCompile(`(?i)(?:بتاريخ|date)\s*:?\s*([0-9]{2}/[0-9]{2}/[0-9]{4})`),
				Extra: map[string]*regexp.Regexp{
					"reference": regexp.MustCompile(`(?i)(?:ref|مرجع)\s*:?\s*([A-Z0-9]+)`),
				},
			},
		},
		{
			// urpay wallet.
			name: string(model.WalletURPay),
			set: model.PatternSet{
				Description: regexp.MustCompile(`\A([^\n]+)`),
				Amount:      regexp.MustCompile(`(?i)(?:مبلغ|amount)\s*:?\s*([0-9,]+(?:\.[0-9]+)?)\s*(SAR|ر\.س)?`),
				Merchant:    regexp.MustCompile(`(?i)(?:لدى|عند|\bat\b)\s+([^\n]+)`),
				Card:        regexp.MustCompile(`(?i)(?:بطاقة|card)\s*:?\s*([0-9*]+)`),
				Date:        regexp.MustCompile(`(?i)(?:في|\bon\b)\s*:?\s*([0-9]{2}-[0-9]{2}-[0-9]{2,4})`),
			},
		},
		{
			// Loose English fallback for unrecognized senders. Registered
			// last so it only wins when nothing specific scores higher.
			name: "generic-en",
			set: model.PatternSet{
				Amount:   regexp.MustCompile(`(?i)(?:amount|paid|purchase of|for)\s*:?\s*([0-9,]+(?:\.[0-9]+)?)\s*([A-Z]{3})?`),
				Merchant: regexp.MustCompile(`(?i)(?:\bat\b|\bfrom\b|\bto\b)\s+([^\n]+)`),
				Date:     regexp.MustCompile(`([0-9]{2}[-/][0-9]{2}[-/][0-9]{2,4})`),
			},
		},
	}
}

// defaultMerchantRules normalize the merchants Saudi statements most often
// mangle. First match wins; order roughly by how noisy the raw names are.
func defaultMerchantRules() []model.MerchantRule {
	rules := []struct {
		pattern  string
		name     string
		category string
	}{
		{`spotify`, "Spotify", "Subscriptions"},
		{`netflix`, "Netflix", "Subscriptions"},
		{`anghami|انغامي`, "Anghami", "Subscriptions"},
		{`shahid|شاهد`, "Shahid", "Subscriptions"},
		{`apple\.com|itunes|icloud`, "Apple", "Subscriptions"},
		{`amazon|امازون|أمازون`, "Amazon", "Shopping"},
		{`noon|نون`, "Noon", "Shopping"},
		{`ikea|ايكيا`, "IKEA", "Shopping"},
		{`careem|كريم`, "Careem", "Transport"},
		{`uber|اوبر|أوبر`, "Uber", "Transport"},
		{`hungerstation|هنقرستيشن`, "HungerStation", "Food & Dining"},
		{`jahez|جاهز`, "Jahez", "Food & Dining"},
		{`talabat|طلبات`, "Talabat", "Food & Dining"},
		{`starbucks|ستاربكس`, "Starbucks", "Food & Dining"},
		{`albaik|البيك`, "AlBaik", "Food & Dining"},
		{`mcdonald|ماكدونالدز`, "McDonald's", "Food & Dining"},
		{`panda|بنده`, "Panda", "Groceries"},
		{`danube|الدانوب`, "Danube", "Groceries"},
		{`tamimi|التميمي`, "Tamimi Markets", "Groceries"},
		{`carrefour|كارفور`, "Carrefour", "Groceries"},
		{`lulu|لولو`, "LuLu Hypermarket", "Groceries"},
		{`nahdi|النهدي`, "Al Nahdi Pharmacy", "Health"},
		{`mobily|موبايلي`, "Mobily", "Bills & Utilities"},
		{`zain|زين`, "Zain", "Bills & Utilities"},
		{`\bstc\b|اس تي سي`, "stc", "Bills & Utilities"},
	}

	out := make([]model.MerchantRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, model.MerchantRule{
			Pattern:  regexp.MustCompile("(?i)" + r.pattern),
			Name:     r.name,
			Category: r.category,
		})
	}
	return out
}

// defaultCategoryRules are keyword rules in Arabic and English. Higher
// priority rules describe more specific evidence (a salary deposit is never
// a grocery run no matter what else the text mentions).
func defaultCategoryRules() []model.CategoryRule {
	return []model.CategoryRule{
		{Priority: 95, Category: "Salary", Keywords: []string{"راتب", "salary", "payroll", "إيداع راتب"}},
		{Priority: 90, Category: "Transfers", Keywords: []string{"حوالة", "تحويل", "transfer", "remittance"}},
		{Priority: 85, Category: "Subscriptions", Keywords: []string{"spotify", "netflix", "anghami", "shahid", "osn", "icloud", "subscription", "اشتراك", "تجديد", "renewal"}},
		{Priority: 80, Category: "Bills & Utilities", Keywords: []string{"سداد", "sadad", "فاتورة", "bill", "كهرباء", "electricity", "مياه", "water", "mobily", "موبايلي", "zain", "زين"}},
		{Priority: 70, Category: "Groceries", Keywords: []string{"بنده", "panda", "danube", "الدانوب", "tamimi", "التميمي", "carrefour", "كارفور", "lulu", "لولو", "hypermarket", "supermarket", "تموينات", "grocery"}},
		{Priority: 65, Category: "Food & Dining", Keywords: []string{"مطعم", "restaurant", "كافيه", "cafe", "قهوة", "coffee", "starbucks", "hungerstation", "هنقرستيشن", "jahez", "جاهز", "talabat", "طلبات", "albaik", "البيك", "mcdonald", "ماكدونالدز"}},
		{Priority: 60, Category: "Transport", Keywords: []string{"uber", "اوبر", "careem", "كريم", "بنزين", "petrol", "fuel", "وقود", "parking", "مواقف", "taxi"}},
		{Priority: 55, Category: "Shopping", Keywords: []string{"amazon", "امازون", "noon", "نون", "ikea", "ايكيا", "zara", "mall", "مول"}},
		{Priority: 55, Category: "Health", Keywords: []string{"صيدلية", "pharmacy", "nahdi", "النهدي", "مستشفى", "hospital", "clinic", "عيادة"}},
		{Priority: 55, Category: "Travel", Keywords: []string{"طيران", "airline", "flight", "فندق", "hotel", "booking"}},
		{Priority: 50, Category: "Cash", Keywords: []string{"سحب", "atm", "صراف", "withdrawal"}},
		{Priority: 45, Category: "Fees", Keywords: []string{"رسوم", "fee", "عمولة", "commission", "vat", "ضريبة"}},
	}
}
