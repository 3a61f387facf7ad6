// Package export renders aggregated vendor views as tab-separated text (the
// clipboard format consumed by spreadsheet paste) and as xlsx workbooks.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"billingdesk/internal/domain"
)

// columns defines the product table header row.
var columns = []string{
	"Product",
	"Quantity",
	"Billing Frequency",
	"Commitment",
	"Cost",
	"Discount %",
	"Amount",
}

// emptyTag is displayed for products with no billing or commitment tag.
const emptyTag = "—"

// WriteTSV writes one product table per tenant view, separated by blank rows.
// Each table has a customer header row, the column header, a section row per
// vendor, and one row per product.
func WriteTSV(w io.Writer, views []domain.TenantVendorView) error {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'

	for i := range views {
		view := &views[i]
		if i > 0 {
			if err := tw.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := tw.Write([]string{"Customer", view.DisplayName}); err != nil {
			return err
		}
		if err := tw.Write(columns); err != nil {
			return err
		}
		for vi := range view.Vendors {
			vendor := &view.Vendors[vi]
			if err := tw.Write(vendorRow(vendor)); err != nil {
				return err
			}
			for pi := range vendor.Products {
				if err := tw.Write(productRow(&vendor.Products[pi])); err != nil {
					return err
				}
			}
		}
	}

	tw.Flush()
	return tw.Error()
}

func vendorRow(v *domain.AggregatedVendor) []string {
	row := make([]string, len(columns))
	row[0] = v.Name
	row[1] = formatQuantity(v.Licenses)
	row[6] = formatMoney(v.Amount)
	return row
}

func productRow(p *domain.AggregatedProduct) []string {
	row := make([]string, len(columns))
	row[0] = p.Name
	row[1] = formatQuantity(p.Licenses)
	row[2] = orEmptyTag(p.Billing)
	row[3] = orEmptyTag(p.Commitment)
	row[4] = formatMoney(p.CostAmount)
	if p.DiscountRate != nil {
		row[5] = formatMoney(*p.DiscountRate)
	}
	row[6] = formatAmount(p)
	return row
}

// formatAmount annotates the amount with the pre-discount value when a
// discount override applies.
func formatAmount(p *domain.AggregatedProduct) string {
	if p.DiscountedAmount != nil {
		return fmt.Sprintf("%s (%s before discount)", formatMoney(*p.DiscountedAmount), formatMoney(p.Amount))
	}
	return formatMoney(p.Amount)
}

func formatQuantity(licenses int) string {
	return fmt.Sprintf("%d stk.", licenses)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orEmptyTag(s string) string {
	if s == "" {
		return emptyTag
	}
	return s
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an invoice number for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: {sanitized_invoice_no}_{YYYY-MM-DD}.{ext}
func BuildFilename(invoiceNo, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(invoiceNo), time.Now().Format("2006-01-02"), ext)
}
