package billing

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"billingdesk/internal/domain"
)

// fallbackVendor labels subscriptions that resolve to no vendor at all.
const fallbackVendor = "Product"

// vendorLexicon identifies vendors by substring match on the product label
// when no billing type is present. Priority order matters: first match wins.
// This is a business rule carried as data, not inferred.
var vendorLexicon = []struct {
	substr  string
	display string
}{
	{"exclaimer", "Exclaimer"},
	{"keepit", "Keepit"},
	{"adobe", "Adobe"},
	{"microsoft", "Microsoft"},
}

// retailVendors lists the vendor-name substrings whose products display the
// retail amount instead of cost. These vendor categories bill the partner at
// cost while the end customer is invoiced at retail.
var retailVendors = []string{"keepit", "adobe", "microsoft"}

// nceMarker matches a leading "(NCE)" tag, case-insensitive, with whitespace.
var nceMarker = regexp.MustCompile(`(?i)^\s*\(nce\)\s*`)

// AggregateVendors collapses a tenant's subscriptions into deduplicated
// per-vendor, per-product groupings. Output is deterministic and independent
// of input order; an empty or nil input yields an empty slice.
func AggregateVendors(subs []domain.Subscription) []domain.AggregatedVendor {
	// Vendors, products, and details sort the way the Danish customer-facing
	// views do. Collators carry mutable scratch buffers, so each call builds
	// its own instead of sharing one across requests.
	coll := collate.New(language.Danish)

	vendors := map[string]*vendorAccumulator{}

	for i := range subs {
		sub := &subs[i]
		name := ResolveVendor(sub)
		key := normalizeKey(name)

		v, ok := vendors[key]
		if !ok {
			v = &vendorAccumulator{name: name, products: map[string]*productAccumulator{}}
			vendors[key] = v
		}
		v.add(sub)
	}

	out := make([]domain.AggregatedVendor, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, v.build(coll))
	}
	sort.Slice(out, func(i, j int) bool {
		return coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// ResolveVendor determines the vendor display name for a subscription:
// billing-type description, then the lexicon match on the product label, then
// nickname, then description, then the literal fallback.
func ResolveVendor(sub *domain.Subscription) string {
	if desc := strings.TrimSpace(sub.BillingTypeDesc); desc != "" {
		return desc
	}
	label := sub.Description
	if label == "" {
		label = sub.Nickname
	}
	lower := strings.ToLower(label)
	for _, entry := range vendorLexicon {
		if strings.Contains(lower, entry.substr) {
			return entry.display
		}
	}
	if sub.Nickname != "" {
		return sub.Nickname
	}
	if sub.Description != "" {
		return sub.Description
	}
	return fallbackVendor
}

// PrefersRetail reports whether the resolved vendor name belongs to the
// retail-billed vendor categories.
func PrefersRetail(vendorName string) bool {
	lower := strings.ToLower(vendorName)
	for _, v := range retailVendors {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

// ProductLabel returns the display label of a subscription's product with a
// leading "(NCE)" marker stripped.
func ProductLabel(sub *domain.Subscription) string {
	label := sub.Description
	if label == "" {
		label = sub.Nickname
	}
	return nceMarker.ReplaceAllString(label, "")
}

// normalizeKey collapses internal whitespace and lower-cases a label. Both the
// aggregation grouping key and the discount lookup key go through this exact
// function; diverging normalizations would make discounts silently fail to
// match.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// vendorAccumulator collects one vendor's products during aggregation.
type vendorAccumulator struct {
	name     string
	products map[string]*productAccumulator
}

func (v *vendorAccumulator) add(sub *domain.Subscription) {
	label := ProductLabel(sub)
	key := normalizeKey(label)

	p, ok := v.products[key]
	if !ok {
		p = &productAccumulator{name: label, details: map[string]*detailAccumulator{}}
		v.products[key] = p
	}

	p.licenses += sub.Licenses
	if PrefersRetail(v.name) {
		p.amount += pick(sub.RetailAmount, sub.Amount)
	} else {
		p.amount += pick(sub.Amount, sub.RetailAmount)
	}
	p.costAmount += costAmount(sub)

	if len(sub.Entries) == 0 {
		p.addDetail(sub.Description, "", "", sub.Licenses, pick(sub.Amount, sub.RetailAmount))
		return
	}
	for i := range sub.Entries {
		e := &sub.Entries[i]
		p.billing.merge(e.Billing)
		p.commitment.merge(e.Commitment)
		p.addDetail(e.Description, e.Billing, e.Commitment, e.Licenses, pick(e.Amount, e.RetailAmount))
	}
}

func (v *vendorAccumulator) build(coll *collate.Collator) domain.AggregatedVendor {
	out := domain.AggregatedVendor{Name: v.name}
	for _, p := range v.products {
		product := p.build(coll)
		out.Licenses += product.Licenses
		out.Amount += product.Amount
		out.Products = append(out.Products, product)
	}
	sort.Slice(out.Products, func(i, j int) bool {
		return coll.CompareString(out.Products[i].Name, out.Products[j].Name) < 0
	})
	return out
}

// costAmount is never basis-switched: it is the subscription's cost amount,
// or the sum of entry amounts when the entries carry more granular costs.
func costAmount(sub *domain.Subscription) float64 {
	var sum float64
	hasEntryCost := false
	for i := range sub.Entries {
		if sub.Entries[i].Amount != nil {
			hasEntryCost = true
			sum += deref(sub.Entries[i].Amount)
		}
	}
	if hasEntryCost {
		return sum
	}
	return pick(sub.Amount, sub.RetailAmount)
}

type productAccumulator struct {
	name       string // first-seen raw label, NCE-stripped
	licenses   int
	amount     float64
	costAmount float64
	billing    tagMerge
	commitment tagMerge
	details    map[string]*detailAccumulator
}

func (p *productAccumulator) addDetail(description, billing, commitment string, licenses int, amount float64) {
	key := normalizeKey(description) + "\x00" + billing + "\x00" + commitment
	d, ok := p.details[key]
	if !ok {
		d = &detailAccumulator{description: description, billing: billing, commitment: commitment}
		p.details[key] = d
	}
	d.licenses += licenses
	d.amount += amount
}

func (p *productAccumulator) build(coll *collate.Collator) domain.AggregatedProduct {
	out := domain.AggregatedProduct{
		Name:       p.name,
		Licenses:   p.licenses,
		Amount:     p.amount,
		CostAmount: p.costAmount,
		Billing:    p.billing.label(),
		Commitment: p.commitment.label(),
	}
	for _, d := range p.details {
		out.Details = append(out.Details, domain.AggregatedDetail{
			Description: d.description,
			Billing:     d.billing,
			Commitment:  d.commitment,
			Licenses:    d.licenses,
			Amount:      d.amount,
		})
	}
	sort.Slice(out.Details, func(i, j int) bool {
		return coll.CompareString(out.Details[i].Description, out.Details[j].Description) < 0
	})
	return out
}

type detailAccumulator struct {
	description string
	billing     string
	commitment  string
	licenses    int
	amount      float64
}

// tagMerge combines billing/commitment tags across entries: agreeing non-empty
// values keep the value, disagreement yields "Mixed", and no tags at all
// yields the empty label.
type tagMerge struct {
	value string
	set   bool
	mixed bool
}

// MixedLabel marks a product whose entries disagree on a tag value.
const MixedLabel = "Mixed"

func (t *tagMerge) merge(v string) {
	if v == "" {
		return
	}
	if !t.set {
		t.value, t.set = v, true
		return
	}
	if v != t.value {
		t.mixed = true
	}
}

func (t *tagMerge) label() string {
	if t.mixed {
		return MixedLabel
	}
	return t.value
}
