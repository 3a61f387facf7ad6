package domain

// Invoice is a single posted invoice as returned by the partner billing API.
// Status is derived from the remaining balance and due date, never stored.
type Invoice struct {
	Number           string        `json:"number"`
	PostingDate      string        `json:"posting_date"` // ISO yyyy-MM-dd
	DueDate          string        `json:"due_date"`     // ISO yyyy-MM-dd
	Amount           float64       `json:"amount"` // tax-exclusive
	AmountInclTax    float64       `json:"amount_incl_tax"`
	RemainingInclTax float64       `json:"remaining_incl_tax"`
	Status           InvoiceStatus `json:"status"`
	PDFRef           string        `json:"pdf_ref,omitempty"`
	BillingDataRef   string        `json:"billing_data_ref,omitempty"`
}

// InvoiceLine is a top-level billing line on an invoice. BillingType is only
// present at this level upstream and is inherited by derived subscriptions.
type InvoiceLine struct {
	Description     string            `json:"description"`
	Amount          float64           `json:"amount"`
	BillingTypeID   string            `json:"billing_type_id,omitempty"`
	BillingTypeDesc string            `json:"billing_type_desc,omitempty"`
	Tenants         []TenantBreakdown `json:"tenants,omitempty"`
}

// InvoiceDetail is an invoice plus its customer and line breakdown.
type InvoiceDetail struct {
	Invoice
	CustomerName string        `json:"customer_name"`
	Lines        []InvoiceLine `json:"lines"`
}

// TenantBreakdown is the per-tenant portion of an invoice line. A missing
// customer reference is a data-quality signal surfaced to the caller, not an
// error.
type TenantBreakdown struct {
	ID            string         `json:"id"`
	DisplayName   string         `json:"display_name"`
	Domain        string         `json:"domain,omitempty"`
	Amount        float64        `json:"amount"` // tax-exclusive
	RetailAmount  float64        `json:"retail_amount"`
	CustomerName  string         `json:"customer_name,omitempty"`
	CustomerVAT   string         `json:"customer_vat,omitempty"`
	CustomerRef   string         `json:"customer_ref,omitempty"`
	Subscriptions []Subscription `json:"subscriptions"`
}

// Subscription is one billed product/service instance held by a tenant.
// Amount is the partner's cost; RetailAmount is what the end customer pays.
// Optional amounts are pointers so absence can be told apart from zero.
type Subscription struct {
	ID              string   `json:"id,omitempty"`
	Description     string   `json:"description"`
	Nickname        string   `json:"nickname,omitempty"`
	Licenses        int      `json:"licenses"`
	Amount          *float64 `json:"amount,omitempty"`
	RetailAmount    *float64 `json:"retail_amount,omitempty"`
	BillingTypeID   string   `json:"billing_type_id,omitempty"`
	BillingTypeDesc string   `json:"billing_type_desc,omitempty"`
	Entries         []Entry  `json:"entries,omitempty"`
}

// Entry is the finest-grained billing record underlying a subscription.
// Entry amounts are for detail display and need not sum exactly to the
// subscription total.
type Entry struct {
	ProductID       string   `json:"product_id,omitempty"`
	Description     string   `json:"description"`
	Nickname        string   `json:"nickname,omitempty"`
	Licenses        int      `json:"licenses"`
	Quantity        float64  `json:"quantity,omitempty"`
	Days            int      `json:"days,omitempty"`
	UnitPrice       *float64 `json:"unit_price,omitempty"`
	RetailUnitPrice *float64 `json:"retail_unit_price,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	RetailAmount    *float64 `json:"retail_amount,omitempty"`
	Billing         string   `json:"billing,omitempty"`    // billing frequency tag
	Commitment      string   `json:"commitment,omitempty"` // commitment term tag
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
}

// InvoiceType is an upstream {id, description} lookup entry used to resolve
// billing-type descriptions missing on a line.
type InvoiceType struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// AggregatedVendor is the ephemeral per-vendor rollup of a tenant's
// subscriptions. Recomputed on every request, never persisted.
type AggregatedVendor struct {
	Name     string              `json:"name"`
	Licenses int                 `json:"licenses"`
	Amount   float64             `json:"amount"`
	Products []AggregatedProduct `json:"products"`
}

// AggregatedProduct is one normalized product bucket within a vendor.
// Amount uses the vendor's preferred basis; CostAmount is always cost basis.
type AggregatedProduct struct {
	Name             string             `json:"name"`
	Licenses         int                `json:"licenses"`
	Amount           float64            `json:"amount"`
	CostAmount       float64            `json:"cost_amount"`
	Billing          string             `json:"billing,omitempty"`
	Commitment       string             `json:"commitment,omitempty"`
	DiscountRate     *float64           `json:"discount_rate,omitempty"`
	DiscountedAmount *float64           `json:"discounted_amount,omitempty"`
	Details          []AggregatedDetail `json:"details"`
}

// AggregatedDetail is one distinct (description, billing, commitment)
// combination within a product.
type AggregatedDetail struct {
	Description string  `json:"description"`
	Billing     string  `json:"billing,omitempty"`
	Commitment  string  `json:"commitment,omitempty"`
	Licenses    int     `json:"licenses"`
	Amount      float64 `json:"amount"`
}

// TenantVendorView is the aggregated vendor view for one tenant with the
// discount overlay applied.
type TenantVendorView struct {
	TenantID    string             `json:"tenant_id"`
	DisplayName string             `json:"display_name"`
	CustomerRef string             `json:"customer_ref,omitempty"`
	MissingRef  bool               `json:"missing_ref"`
	Vendors     []AggregatedVendor `json:"vendors"`
	Discounted  bool               `json:"discounted"`
}

// DiscountOverride is a stored per-tenant, per-product discount percentage.
type DiscountOverride struct {
	TenantID    string  `db:"tenant_id" json:"tenant_id"`
	ProductKey  string  `db:"product_key" json:"product_key"`
	VendorName  string  `db:"vendor_name" json:"vendor_name"`
	ProductName string  `db:"product_name" json:"product_name"`
	Rate        float64 `db:"rate" json:"rate"` // percentage in [0,100], 2 decimals
}

// BillingMetrics summarizes a flat invoice list under one amount basis.
type BillingMetrics struct {
	TotalInvoiced      float64 `json:"total_invoiced"`
	BalanceDue         float64 `json:"balance_due"`
	OverdueAmount      float64 `json:"overdue_amount"`
	OpenInvoiceCount   int     `json:"open_invoice_count"`
	CurrentMonthVolume float64 `json:"current_month_volume"`
	PaidThisMonth      float64 `json:"paid_this_month"`
	AverageInvoice     float64 `json:"average_invoice"`
}

// AgingBuckets holds outstanding tax-inclusive amounts by days past due.
// Bucket bounds are inclusive: 30 days past due lands in Current.
type AgingBuckets struct {
	Current float64 `json:"0-30"`
	Days60  float64 `json:"31-60"`
	Days90  float64 `json:"61-90"`
	Over90  float64 `json:"90+"`
}
