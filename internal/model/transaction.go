// Package model defines the core data structures for the hisab application.
package model

// Transaction is the structured record extracted from a single bank or
// wallet notification message. It is constructed once per parse and not
// modified afterwards.
type Transaction struct {
	Description   string     `json:"description"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Merchant      string     `json:"merchant"`
	AccountMasked string     `json:"account_masked"`
	Date          string     `json:"date"` // YYYY-MM-DD when normalization succeeded
	Category      string     `json:"category"`
	Recurrence    Recurrence `json:"recurrence"`
	RawText       string     `json:"raw_text"`
	BankFormat    string     `json:"bank_format"`
}

// RecurrencePeriod is the cadence of a recurring transaction series.
type RecurrencePeriod string

// Known recurrence periods.
const (
	PeriodDaily   RecurrencePeriod = "daily"
	PeriodWeekly  RecurrencePeriod = "weekly"
	PeriodMonthly RecurrencePeriod = "monthly"
	PeriodYearly  RecurrencePeriod = "yearly"
)

// Recurrence is the outcome of recurrence detection. Period is only set
// when IsRecurring is true; Confidence is 0 when no determination was made.
type Recurrence struct {
	IsRecurring bool             `json:"is_recurring"`
	Period      RecurrencePeriod `json:"period,omitempty"`
	Confidence  float64          `json:"confidence"`
}
