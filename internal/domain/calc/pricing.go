package calc

import (
	"math"
	"strings"

	"daon_interior/internal/domain/entities"
)

// PremiumBrand gets a flat unit-price × quantity path that bypasses the
// curtain/pleat/area logic entirely. The brand has no independent cost
// field; cost is backed out of the sale price at 60% less VAT.
const PremiumBrand = "헌터더글라스"

const (
	vatDivisor           = 1.1
	premiumCostRatio     = 0.6
	innerPlainPriceRatio = 0.63
)

// IsPremiumBrand matches the brand literal after trimming, ignoring case.
func IsPremiumBrand(brand string) bool {
	return strings.EqualFold(strings.TrimSpace(brand), PremiumBrand)
}

// TotalPrice computes the sale total for a product row. ok=false means a
// required price, count or area was absent; the caller must treat the total
// as empty rather than zero.
//
// Branch order is shared with PurchaseTotal and must not be reordered:
// premium brand, outer curtain per-width, inner plain, inner butterfly,
// blind, then fallback to the stored total.
func TotalPrice(row entities.EstimateRow, area float64) (float64, bool) {
	switch {
	case IsPremiumBrand(row.Brand):
		if row.SalePrice <= 0 || row.Quantity <= 0 {
			return 0, false
		}
		return math.Round(row.SalePrice * float64(row.Quantity)), true

	case isOuterPerWidth(row):
		if row.SalePrice <= 0 || row.WidthCount <= 0 {
			return 0, false
		}
		return math.Round(row.SalePrice * float64(row.WidthCount)), true

	case isInnerPlain(row):
		price := row.LargePlainPrice
		if price <= 0 {
			price = row.SalePrice * innerPlainPriceRatio
		}
		if price <= 0 || area <= 0 {
			return 0, false
		}
		return math.Round(price * area), true

	case isInnerButterfly(row):
		if row.SalePrice <= 0 || area <= 0 {
			return 0, false
		}
		return math.Round(row.SalePrice * area), true

	case row.ProductType == entities.ProductTypeBlind:
		if row.SalePrice <= 0 || area <= 0 {
			return 0, false
		}
		return math.Round(row.SalePrice * area), true
	}
	return row.TotalPrice, true
}

// PurchaseTotal mirrors TotalPrice on the cost side.
func PurchaseTotal(row entities.EstimateRow, area float64) (float64, bool) {
	switch {
	case IsPremiumBrand(row.Brand):
		if row.SalePrice <= 0 || row.Quantity <= 0 {
			return 0, false
		}
		return math.Round(row.SalePrice * premiumCostRatio / vatDivisor), true

	case isOuterPerWidth(row):
		if row.PurchaseCost <= 0 || row.WidthCount <= 0 {
			return 0, false
		}
		return math.Round(row.PurchaseCost * float64(row.WidthCount)), true

	case isInnerPlain(row):
		cost := row.LargePlainCost
		if cost <= 0 {
			cost = row.PurchaseCost * innerPlainPriceRatio
		}
		if cost <= 0 || area <= 0 {
			return 0, false
		}
		return math.Round(cost * area), true

	case isInnerButterfly(row):
		if row.PurchaseCost <= 0 || area <= 0 {
			return 0, false
		}
		return math.Round(row.PurchaseCost * area), true

	case row.ProductType == entities.ProductTypeBlind:
		if row.PurchaseCost <= 0 || area <= 0 {
			return 0, false
		}
		return math.Round(row.PurchaseCost * area), true
	}
	return row.Cost, true
}

// Margin is the VAT-exclusive sale total minus cost. The 1.1 divisor backs
// the fixed 10% VAT out of the VAT-inclusive sale total.
func Margin(totalPrice, cost float64) float64 {
	return math.Round(totalPrice/vatDivisor) - cost
}

func isOuterPerWidth(row entities.EstimateRow) bool {
	return row.ProductType == entities.ProductTypeCurtain &&
		row.CurtainType == entities.CurtainTypeOuter &&
		(row.PleatType == entities.PleatTypePlain || row.PleatType == entities.PleatTypeButterfly)
}

func isInnerPlain(row entities.EstimateRow) bool {
	return row.ProductType == entities.ProductTypeCurtain &&
		row.CurtainType == entities.CurtainTypeInner &&
		row.PleatType == entities.PleatTypePlain
}

func isInnerButterfly(row entities.EstimateRow) bool {
	return row.ProductType == entities.ProductTypeCurtain &&
		row.CurtainType == entities.CurtainTypeInner &&
		row.PleatType == entities.PleatTypeButterfly
}
