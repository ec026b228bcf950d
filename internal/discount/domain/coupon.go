package domain

// Coupon is a discount amount attached to a product name. Product names are
// the lookup key; there is at most one coupon per product.
type Coupon struct {
	ID          int
	ProductName string
	Description string
	Amount      float64
}
