package entities

import (
	"strings"
	"time"
)

// BillingPeriodLabel prefixes the single memo line this service owns. All
// other memo content belongs to Stripe and passes through untouched.
const BillingPeriodLabel = "Billing Period:"

const billingPeriodDateFormat = "2006-01-02"

// FormatBillingPeriod renders a period as "YYYY-MM-DD" for a point date or
// "YYYY-MM-DD to YYYY-MM-DD" for a range.
func FormatBillingPeriod(start time.Time, end *time.Time) string {
	s := start.Format(billingPeriodDateFormat)
	if end == nil {
		return s
	}
	return s + " to " + end.Format(billingPeriodDateFormat)
}

// MergeBillingPeriod embeds the billing period into a memo as one labeled
// line. An existing "Billing Period:" line is replaced in place, preserving
// every other line and their order; otherwise the line is appended. The merge
// is idempotent: applying the same period twice yields the same memo.
func MergeBillingPeriod(memo string, start time.Time, end *time.Time) string {
	line := BillingPeriodLabel + " " + FormatBillingPeriod(start, end)

	if strings.Contains(memo, BillingPeriodLabel) {
		lines := strings.Split(memo, "\n")
		for i, l := range lines {
			if strings.HasPrefix(l, BillingPeriodLabel) {
				lines[i] = line
			}
		}
		return strings.Join(lines, "\n")
	}

	return strings.TrimSpace(memo + "\n" + line)
}
