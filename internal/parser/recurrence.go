package parser

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hisab-cli/hisab/internal/model"
)

// Subscription services bill monthly with near certainty; utility billers
// also cycle monthly but the wording is less specific, hence the lower
// confidence.
var (
	subscriptionKeywords = []string{
		"spotify", "netflix", "shahid", "osn", "anghami", "youtube",
		"icloud", "apple.com", "prime", "subscription", "membership",
		"renewal", "اشتراك", "تجديد", "عضوية",
	}
	utilityKeywords = []string{
		"electricity", "كهرباء", "water", "مياه", "sadad", "سداد",
		"فاتورة", "bill", "stc", "mobily", "موبايلي", "zain", "زين",
	}
)

// detectRecurrence is the single-message heuristic: keyword evidence only,
// no history. The amount parameter is accepted for future amount-based
// refinement and is not yet consulted.
func detectRecurrence(merchant string, _ float64, description string) model.Recurrence {
	haystack := strings.ToLower(merchant + " " + description)

	for _, kw := range subscriptionKeywords {
		if strings.Contains(haystack, kw) {
			return model.Recurrence{IsRecurring: true, Period: model.PeriodMonthly, Confidence: 0.8}
		}
	}
	for _, kw := range utilityKeywords {
		if strings.Contains(haystack, kw) {
			return model.Recurrence{IsRecurring: true, Period: model.PeriodMonthly, Confidence: 0.7}
		}
	}
	return model.Recurrence{}
}

// detectRecurrenceWithHistory classifies recurrence statistically. History
// entries with the same merchant and an amount within 10% of the current
// amount contribute their dates; the gaps between consecutive dates must be
// regular (population stddev below 20% of the mean) and the mean gap must
// fall in a known period band.
func detectRecurrenceWithHistory(current model.Transaction, history []model.Transaction) model.Recurrence {
	tolerance := 0.10 * math.Abs(current.Amount)

	var dates []time.Time
	for _, h := range history {
		if h.Merchant != current.Merchant {
			continue
		}
		if math.Abs(h.Amount-current.Amount) > tolerance {
			continue
		}
		if t, err := time.Parse("2006-01-02", h.Date); err == nil {
			dates = append(dates, t)
		}
	}
	if len(dates) < 2 {
		return model.Recurrence{}
	}
	if t, err := time.Parse("2006-01-02", current.Date); err == nil {
		dates = append(dates, t)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	gaps := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, dates[i].Sub(dates[i-1]).Hours()/24)
	}

	mean := meanOf(gaps)
	if mean <= 0 || stddevOf(gaps, mean) >= 0.2*mean {
		return model.Recurrence{}
	}

	switch {
	case mean >= 25 && mean <= 35:
		return model.Recurrence{IsRecurring: true, Period: model.PeriodMonthly, Confidence: 0.9}
	case mean >= 6 && mean <= 8:
		return model.Recurrence{IsRecurring: true, Period: model.PeriodWeekly, Confidence: 0.8}
	case mean >= 360 && mean <= 370:
		return model.Recurrence{IsRecurring: true, Period: model.PeriodYearly, Confidence: 0.8}
	case mean >= 0.8 && mean <= 1.2:
		return model.Recurrence{IsRecurring: true, Period: model.PeriodDaily, Confidence: 0.7}
	}
	return model.Recurrence{}
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddevOf(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	variance := 0.0
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(xs)))
}
