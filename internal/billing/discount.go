package billing

import "math"

// keySeparator joins the vendor and product parts of a discount product key.
const keySeparator = "|"

// discountTolerance is the minimum absolute difference between a full and a
// discounted total before a discount is considered visible. Differences below
// it are floating-point noise, not discounts.
const discountTolerance = 0.005

// ProductKey derives the discount lookup key for a vendor/product pair. It
// runs both parts through the same normalization as the aggregation grouping
// key; the two must match exactly or overrides silently fail to apply.
func ProductKey(vendorName, productName string) string {
	return normalizeKey(vendorName) + keySeparator + normalizeKey(productName)
}

// ClampRate clamps a discount percentage to [0,100] and rounds it to two
// decimal places.
func ClampRate(rate float64) float64 {
	if !finite(rate) {
		return 0
	}
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	return math.Round(rate*100) / 100
}

// DiscountedAmount applies a percentage discount to an amount.
func DiscountedAmount(amount, rate float64) float64 {
	return amount * (1 - rate/100)
}

// IsDiscounted reports whether the difference between the full and discounted
// totals is large enough to surface to the user.
func IsDiscounted(full, discounted float64) bool {
	return math.Abs(full-discounted) > discountTolerance
}
