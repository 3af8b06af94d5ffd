package calc

import (
	"math"

	"daon_interior/internal/domain/entities"
)

// Option rows are priced by their apply type against the owning product
// row's computed fields, always multiplied by the option's own quantity.
// This is a separate dispatch table from the product pricing branches.

// OptionTotal computes the sale total of an option row. product is the
// owning product row; productArea its numeric billable area.
func OptionTotal(opt, product entities.EstimateRow, productArea float64) (float64, bool) {
	return optionAmount(opt, product, productArea, opt.SalePrice, product.TotalPrice)
}

// OptionCost computes the purchase total of an option row.
func OptionCost(opt, product entities.EstimateRow, productArea float64) (float64, bool) {
	return optionAmount(opt, product, productArea, opt.PurchaseCost, product.Cost)
}

func optionAmount(opt, product entities.EstimateRow, productArea, unit, productTotal float64) (float64, bool) {
	qty := float64(opt.Quantity)
	if qty <= 0 {
		return 0, false
	}

	switch opt.ApplyType {
	case entities.ApplyFree:
		return 0, true
	case entities.ApplyPercentOfTotal:
		// The option's unit price holds the percentage rate.
		rate := opt.SalePrice
		if rate <= 0 || productTotal <= 0 {
			return 0, false
		}
		return math.Round(productTotal * rate / 100 * qty), true
	case entities.ApplyPerWidth:
		if unit <= 0 || product.WidthCount <= 0 {
			return 0, false
		}
		return math.Round(unit * float64(product.WidthCount) * qty), true
	case entities.ApplyPerMeter:
		if unit <= 0 || product.WidthMM <= 0 {
			return 0, false
		}
		return math.Round(unit * product.WidthMM / 1000 * qty), true
	case entities.ApplyPerSquareMeter:
		if unit <= 0 || productArea <= 0 {
			return 0, false
		}
		return math.Round(unit * productArea * qty), true
	case entities.ApplyFlat:
		if unit <= 0 {
			return 0, false
		}
		return math.Round(unit * qty), true
	}
	return 0, false
}
