package store

// DiscountRule resolves a coupon code to a discount percentage. New codes
// are added by extending the rule, never by touching the total computation.
type DiscountRule interface {
	Percentage(code string) (float64, bool)
}

// CodeTable is a fixed code-to-percentage table.
type CodeTable map[string]float64

func (t CodeTable) Percentage(code string) (float64, bool) {
	pct, ok := t[code]
	return pct, ok
}

// DefaultDiscounts carries the single built-in 10% code.
func DefaultDiscounts() DiscountRule {
	return CodeTable{"RIDER10": 10}
}
