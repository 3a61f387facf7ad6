package billingapi

// Raw payload shapes for the partner billing API. Every nested field is
// optional upstream: tenants may be absent, entries may be absent,
// subscriptions may be absent. Amount fields are pointers so the mapper can
// tell a missing value apart from an explicit zero.

// RawInvoice is one record from GET /accounts/{partnerId}/invoices. The list
// endpoint omits lines; the detail endpoint includes them.
type RawInvoice struct {
	InvoiceNo                   string    `json:"invoiceNo"`
	CustomerName                string    `json:"customerName"`
	PostingDate                 string    `json:"postingDate"`
	DueDate                     string    `json:"dueDate"`
	Amount                      float64   `json:"amount"`
	AmountIncludingVAT          float64   `json:"amountIncludingVAT"`
	RemainingAmountIncludingVAT float64   `json:"remainingAmountIncludingVAT"`
	InvoicePdf                  string    `json:"invoicePdf"`
	BillingDataCsv              string    `json:"billingDataCsv"`
	Lines                       []RawLine `json:"lines"`
}

// RawLine is a top-level invoice line. Billing type is only present here, not
// on the nested tenant records.
type RawLine struct {
	Description     string          `json:"description"`
	Amount          float64         `json:"amount"`
	InvoiceTypeID   string          `json:"invoiceTypeId"`
	InvoiceTypeDesc string          `json:"invoiceTypeDescription"`
	BillingData     *RawBillingData `json:"billingData"`
}

// RawBillingData wraps the per-tenant breakdown of a line.
type RawBillingData struct {
	Tenants []RawTenant `json:"tenants"`
}

// RawTenant carries up to three alternative shapes for what the tenant is
// paying for (subscriptions, flat entries, connectors) plus its own aggregate
// fields as a last resort.
type RawTenant struct {
	TenantID           string           `json:"tenantId"`
	DisplayName        string           `json:"displayName"`
	DefaultDomain      string           `json:"defaultDomain"`
	Amount             *float64         `json:"amount"`
	RetailAmount       *float64         `json:"retailAmount"`
	CustomerName       string           `json:"customerName"`
	CustomerVatID      string           `json:"customerVatId"`
	CustomerRef        string           `json:"customerRef"`
	ProductDescription string           `json:"productDescription"`
	Quantity           float64          `json:"quantity"`
	Subscriptions      []RawSubscription `json:"subscriptions"`
	Entries            []RawEntry       `json:"entries"`
	Connectors         []RawConnector   `json:"connectors"`
}

// RawSubscription is an explicit subscription under a tenant.
type RawSubscription struct {
	SubscriptionID string     `json:"subscriptionId"`
	Description    string     `json:"description"`
	Nickname       string     `json:"nickname"`
	Amount         *float64   `json:"amount"`
	RetailAmount   *float64   `json:"retailAmount"`
	Entries        []RawEntry `json:"entries"`
}

// RawEntry is the finest-grained upstream billing record.
type RawEntry struct {
	ProductID       string   `json:"productId"`
	Description     string   `json:"description"`
	Nickname        string   `json:"nickname"`
	Licenses        int      `json:"licenses"`
	Quantity        float64  `json:"quantity"`
	Days            int      `json:"days"`
	UnitPrice       *float64 `json:"unitPrice"`
	RetailUnitPrice *float64 `json:"retailUnitPrice"`
	Amount          *float64 `json:"amount"`
	RetailAmount    *float64 `json:"retailAmount"`
	Billing         string   `json:"billing"`
	Commitment      string   `json:"commitment"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
}

// RawConnector is a consumption/connector charge under a tenant. Amounts may
// be absent, in which case they are quantity times unit price.
type RawConnector struct {
	ConnectorID     string   `json:"connectorId"`
	Description     string   `json:"description"`
	Quantity        float64  `json:"quantity"`
	UnitPrice       *float64 `json:"unitPrice"`
	RetailUnitPrice *float64 `json:"retailUnitPrice"`
	Amount          *float64 `json:"amount"`
	RetailAmount    *float64 `json:"retailAmount"`
}

// RawInvoiceType is one entry from the invoicetypes lookup endpoint.
type RawInvoiceType struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type invoiceListResponse struct {
	Invoices []RawInvoice `json:"invoices"`
}

type invoiceTypesResponse struct {
	InvoiceTypes []RawInvoiceType `json:"invoiceTypes"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
