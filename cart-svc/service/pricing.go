package service

import "restaurant-ordering/cart-svc/domain"

// Pricing is deliberately dumb: effective unit price is base plus the
// selected add-ons, a line is unit price times quantity, the cart total is
// the sum of lines. All amounts are integer minor units.

func UnitPrice(base int64, addOns []domain.AddOn) int64 {
	price := base
	for _, addOn := range addOns {
		price += addOn.Price
	}
	return price
}

func LineSubtotal(item domain.LineItem) int64 {
	return UnitPrice(item.UnitPrice, item.AddOns) * int64(item.Quantity)
}

func CartTotal(items []domain.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += LineSubtotal(item)
	}
	return total
}

func CartCount(items []domain.LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
