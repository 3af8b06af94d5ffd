package entities

// InsideOutside is the catalog flag telling which curtain layer a fabric is
// made for. It seeds CurtainType/PleatType defaults when a product is
// attached to a row.

type InsideOutside string

const (
	InsideOutsideInner InsideOutside = "속"
	InsideOutsideOuter InsideOutside = "겉"
)

// Product is a catalog record resolved by code or name.
//
// WidthMM is the fabric bolt width. 0 means unknown; the engines then assume
// the standard 1370mm bolt. Bolts wider than 2000mm are normalized back to
// 1370mm inside the plain/butterfly formulas (large-bolt normalization).

type Product struct {
	Code            string        `json:"code"`
	Name            string        `json:"name"`
	VendorName      string        `json:"vendorName"`
	Brand           string        `json:"brand"`
	Category        ProductType   `json:"category"`
	SalePrice       float64       `json:"salePrice"`
	PurchaseCost    float64       `json:"purchaseCost"`
	LargePlainPrice float64       `json:"largePlainPrice,omitempty"`
	LargePlainCost  float64       `json:"largePlainCost,omitempty"`
	WidthMM         float64       `json:"widthMM"`
	Details         string        `json:"details"`
	InsideOutside   InsideOutside `json:"insideOutside"`
	MinOrderQty     float64       `json:"minOrderQty"` // blinds: minimum billable m²
}

// OptionApplyType selects how an option row is priced against its owning
// product row. The Korean literals are persisted values.

type OptionApplyType string

const (
	ApplyPercentOfTotal OptionApplyType = "판매금액%" // percentage of the product's total price
	ApplyPerWidth       OptionApplyType = "폭당"    // unit price × product width count
	ApplyPerMeter       OptionApplyType = "m당"    // unit price × product width in meters
	ApplyFlat           OptionApplyType = "추가"    // flat addition
	ApplyFree           OptionApplyType = "무료"    // included, no charge
	ApplyPerSquareMeter OptionApplyType = "㎡당"    // unit price × product area
)
