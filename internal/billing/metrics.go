package billing

import (
	"math"
	"time"

	"billingdesk/internal/domain"
)

// ComputeMetrics aggregates a flat invoice list into summary statistics in a
// single pass. The basis selects tax-inclusive or tax-exclusive amounts; when
// the preferred field is absent the other is used.
func ComputeMetrics(invoices []domain.Invoice, basis domain.AmountBasis, now time.Time) domain.BillingMetrics {
	var m domain.BillingMetrics
	currentMonth := now.Format("2006-01")

	for i := range invoices {
		inv := &invoices[i]
		amount := basisAmount(inv, basis)

		m.TotalInvoiced += amount
		if inv.Status.Open() {
			m.BalanceDue += amount
			m.OpenInvoiceCount++
		}
		if inv.Status == domain.StatusOverdue {
			m.OverdueAmount += amount
		}
		if postingMonth(inv.PostingDate) == currentMonth {
			m.CurrentMonthVolume += amount
			if inv.Status == domain.StatusPaid {
				m.PaidThisMonth += amount
			}
		}
	}

	if n := len(invoices); n > 0 {
		m.AverageInvoice = m.TotalInvoiced / float64(n)
	}
	return m
}

// ComputeAgingBuckets distributes the tax-inclusive amount of every non-paid
// invoice into days-past-due buckets with inclusive upper bounds. Invoices
// not yet due land in the 0-30 bucket; paid invoices are excluded entirely.
func ComputeAgingBuckets(invoices []domain.Invoice, reference time.Time) domain.AgingBuckets {
	var b domain.AgingBuckets
	for i := range invoices {
		inv := &invoices[i]
		if inv.Status == domain.StatusPaid {
			continue
		}
		amount := inv.AmountInclTax
		if amount == 0 {
			amount = inv.Amount
		}
		switch days := daysPastDue(inv.DueDate, reference); {
		case days <= 30:
			b.Current += amount
		case days <= 60:
			b.Days60 += amount
		case days <= 90:
			b.Days90 += amount
		default:
			b.Over90 += amount
		}
	}
	return b
}

func daysPastDue(dueDate string, reference time.Time) int {
	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return 0
	}
	return int(math.Floor(reference.Sub(due).Hours() / 24))
}

func basisAmount(inv *domain.Invoice, basis domain.AmountBasis) float64 {
	preferred, other := inv.AmountInclTax, inv.Amount
	if basis == domain.BasisExclTax {
		preferred, other = inv.Amount, inv.AmountInclTax
	}
	if preferred == 0 {
		return other
	}
	return preferred
}

// postingMonth returns the "YYYY-MM" prefix of an ISO posting date.
func postingMonth(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
