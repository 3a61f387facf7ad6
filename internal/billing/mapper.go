package billing

import (
	"billingdesk/internal/billingapi"
	"billingdesk/internal/domain"
)

// MapInvoice converts one raw invoice list record to the canonical shape,
// deriving its status as of today (ISO yyyy-MM-dd).
func MapInvoice(raw *billingapi.RawInvoice, today string) domain.Invoice {
	return domain.Invoice{
		Number:           raw.InvoiceNo,
		PostingDate:      raw.PostingDate,
		DueDate:          raw.DueDate,
		Amount:           raw.Amount,
		AmountInclTax:    raw.AmountIncludingVAT,
		RemainingInclTax: raw.RemainingAmountIncludingVAT,
		Status:           domain.InvoiceStatusOn(raw.RemainingAmountIncludingVAT, raw.DueDate, today),
		PDFRef:           raw.InvoicePdf,
		BillingDataRef:   raw.BillingDataCsv,
	}
}

// MapInvoices converts a raw invoice list, deriving statuses as of today.
func MapInvoices(raw []billingapi.RawInvoice, today string) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(raw))
	for i := range raw {
		out = append(out, MapInvoice(&raw[i], today))
	}
	return out
}

// MapInvoiceDetail normalizes a raw invoice detail payload into the canonical
// InvoiceDetail. It tolerates missing or null fields at every nesting level
// and always produces a structurally valid object; upstream shape variance is
// absorbed by the ordered subscription fallback chain per tenant.
func MapInvoiceDetail(raw *billingapi.RawInvoice, types []domain.InvoiceType, today string) *domain.InvoiceDetail {
	detail := &domain.InvoiceDetail{
		Invoice:      MapInvoice(raw, today),
		CustomerName: raw.CustomerName,
		Lines:        make([]domain.InvoiceLine, 0, len(raw.Lines)),
	}
	for i := range raw.Lines {
		detail.Lines = append(detail.Lines, mapLine(&raw.Lines[i], types))
	}
	return detail
}

func mapLine(raw *billingapi.RawLine, types []domain.InvoiceType) domain.InvoiceLine {
	line := domain.InvoiceLine{
		Description:     raw.Description,
		Amount:          raw.Amount,
		BillingTypeID:   raw.InvoiceTypeID,
		BillingTypeDesc: resolveBillingTypeDesc(raw, types),
	}
	if raw.BillingData == nil {
		return line
	}
	for i := range raw.BillingData.Tenants {
		line.Tenants = append(line.Tenants, mapTenant(&raw.BillingData.Tenants[i], &line))
	}
	return line
}

// resolveBillingTypeDesc prefers the description on the line, falling back to
// the invoicetypes lookup by id.
func resolveBillingTypeDesc(raw *billingapi.RawLine, types []domain.InvoiceType) string {
	if raw.InvoiceTypeDesc != "" {
		return raw.InvoiceTypeDesc
	}
	for _, t := range types {
		if t.ID != "" && t.ID == raw.InvoiceTypeID {
			return t.Description
		}
	}
	return ""
}

func mapTenant(raw *billingapi.RawTenant, line *domain.InvoiceLine) domain.TenantBreakdown {
	t := domain.TenantBreakdown{
		ID:           raw.TenantID,
		DisplayName:  raw.DisplayName,
		Domain:       raw.DefaultDomain,
		Amount:       deref(raw.Amount),
		RetailAmount: deref(raw.RetailAmount),
		CustomerName: raw.CustomerName,
		CustomerVAT:  raw.CustomerVatID,
		CustomerRef:  raw.CustomerRef,
	}
	t.Subscriptions = deriveSubscriptions(raw)

	// Billing type only exists at the line level upstream, but the
	// aggregation engine needs it per subscription.
	for i := range t.Subscriptions {
		t.Subscriptions[i].BillingTypeID = line.BillingTypeID
		t.Subscriptions[i].BillingTypeDesc = line.BillingTypeDesc
	}
	return t
}

// deriveSubscriptions runs the ordered extraction strategies; the first one
// producing a non-empty list wins. The upstream shape for "what a tenant is
// paying for" varies by invoice type, so each strategy handles one shape.
func deriveSubscriptions(raw *billingapi.RawTenant) []domain.Subscription {
	for _, extract := range subscriptionStrategies {
		if subs := extract(raw); len(subs) > 0 {
			return subs
		}
	}
	return nil
}

var subscriptionStrategies = []func(*billingapi.RawTenant) []domain.Subscription{
	subscriptionsFromExplicit,
	subscriptionsFromEntries,
	subscriptionsFromConnectors,
	subscriptionFromTenantAggregate,
}

// subscriptionsFromExplicit maps the tenant's explicit subscriptions array,
// the shape used by subscription invoices.
func subscriptionsFromExplicit(raw *billingapi.RawTenant) []domain.Subscription {
	subs := make([]domain.Subscription, 0, len(raw.Subscriptions))
	for i := range raw.Subscriptions {
		rs := &raw.Subscriptions[i]
		entries := mapEntries(rs.Entries)
		subs = append(subs, domain.Subscription{
			ID:           rs.SubscriptionID,
			Description:  rs.Description,
			Nickname:     rs.Nickname,
			Licenses:     licenseCount(entries),
			Amount:       rs.Amount,
			RetailAmount: rs.RetailAmount,
			Entries:      entries,
		})
	}
	return subs
}

// subscriptionsFromEntries uses the tenant's flat entries array directly, one
// synthetic subscription per entry (consumption invoices).
func subscriptionsFromEntries(raw *billingapi.RawTenant) []domain.Subscription {
	subs := make([]domain.Subscription, 0, len(raw.Entries))
	for _, e := range mapEntries(raw.Entries) {
		licenses := e.Licenses
		if licenses == 0 {
			licenses = 1
		}
		subs = append(subs, domain.Subscription{
			ID:           e.ProductID,
			Description:  e.Description,
			Nickname:     e.Nickname,
			Licenses:     licenses,
			Amount:       e.Amount,
			RetailAmount: e.RetailAmount,
			Entries:      []domain.Entry{e},
		})
	}
	return subs
}

// subscriptionsFromConnectors maps connector charges, computing amounts from
// quantity and unit price when no explicit amount is present.
func subscriptionsFromConnectors(raw *billingapi.RawTenant) []domain.Subscription {
	subs := make([]domain.Subscription, 0, len(raw.Connectors))
	for i := range raw.Connectors {
		rc := &raw.Connectors[i]
		amount := rc.Amount
		if amount == nil && rc.UnitPrice != nil {
			amount = ptr(rc.Quantity * deref(rc.UnitPrice))
		}
		retail := rc.RetailAmount
		if retail == nil && rc.RetailUnitPrice != nil {
			retail = ptr(rc.Quantity * deref(rc.RetailUnitPrice))
		}
		subs = append(subs, domain.Subscription{
			ID:           rc.ConnectorID,
			Description:  rc.Description,
			Licenses:     int(rc.Quantity),
			Amount:       amount,
			RetailAmount: retail,
		})
	}
	return subs
}

// subscriptionFromTenantAggregate synthesizes a single subscription from the
// tenant's own aggregate fields, the last resort for legacy single-line
// invoices.
func subscriptionFromTenantAggregate(raw *billingapi.RawTenant) []domain.Subscription {
	if raw.ProductDescription == "" && raw.Amount == nil && raw.RetailAmount == nil {
		return nil
	}
	return []domain.Subscription{{
		Description:  raw.ProductDescription,
		Licenses:     int(raw.Quantity),
		Amount:       raw.Amount,
		RetailAmount: raw.RetailAmount,
	}}
}

func mapEntries(raw []billingapi.RawEntry) []domain.Entry {
	if len(raw) == 0 {
		return nil
	}
	entries := make([]domain.Entry, 0, len(raw))
	for _, re := range raw {
		entries = append(entries, domain.Entry{
			ProductID:       re.ProductID,
			Description:     re.Description,
			Nickname:        re.Nickname,
			Licenses:        re.Licenses,
			Quantity:        re.Quantity,
			Days:            re.Days,
			UnitPrice:       re.UnitPrice,
			RetailUnitPrice: re.RetailUnitPrice,
			Amount:          re.Amount,
			RetailAmount:    re.RetailAmount,
			Billing:         re.Billing,
			Commitment:      re.Commitment,
			StartDate:       re.StartDate,
			EndDate:         re.EndDate,
		})
	}
	return entries
}

// licenseCount sums entry license quantities, falling back to the entry count
// when the sum is zero.
func licenseCount(entries []domain.Entry) int {
	sum := 0
	for _, e := range entries {
		sum += e.Licenses
	}
	if sum == 0 {
		return len(entries)
	}
	return sum
}
