package domain

// InvoiceStatus is the derived payment state of an invoice.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "paid"
	StatusUnpaid  InvoiceStatus = "unpaid"
	StatusOverdue InvoiceStatus = "overdue"
)

// Open reports whether the invoice still carries a balance.
func (s InvoiceStatus) Open() bool {
	return s == StatusUnpaid || s == StatusOverdue
}

// AmountBasis selects which invoice amount field metrics are computed over.
type AmountBasis string

const (
	BasisInclTax AmountBasis = "incl_tax"
	BasisExclTax AmountBasis = "excl_tax"
)

// ParseAmountBasis maps a query-param value to an AmountBasis, defaulting to
// tax-inclusive.
func ParseAmountBasis(s string) AmountBasis {
	if s == string(BasisExclTax) {
		return BasisExclTax
	}
	return BasisInclTax
}

// InvoiceStatusOn derives the status of an invoice as of the given ISO
// yyyy-MM-dd date. Paid when the remaining tax-inclusive balance is exactly
// zero; otherwise overdue when the due date is strictly before today. The
// string comparison is safe because the format is fixed-width and zero-padded.
func InvoiceStatusOn(remainingInclTax float64, dueDate, today string) InvoiceStatus {
	if remainingInclTax == 0 {
		return StatusPaid
	}
	if dueDate < today {
		return StatusOverdue
	}
	return StatusUnpaid
}
