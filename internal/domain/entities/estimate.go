package entities

import "time"

// RowType distinguishes product line items from option line items attached
// to a product.

type RowType string

const (
	RowTypeProduct RowType = "product"
	RowTypeOption  RowType = "option"
)

// ProductType is the catalog category of a row. The Korean literals are the
// persisted wire values and must stay readable by the existing documents.

type ProductType string

const (
	ProductTypeCurtain ProductType = "커튼"
	ProductTypeBlind   ProductType = "블라인드"
)

// CurtainType selects the curtain layer. Outer curtains (겉커튼) are priced
// per fabric width; inner curtains (속커튼) are priced by area.

type CurtainType string

const (
	CurtainTypeOuter CurtainType = "겉커튼"
	CurtainTypeInner CurtainType = "속커튼"
	CurtainTypeNone  CurtainType = ""
)

// PleatType is the pleat style of a curtain row.

type PleatType string

const (
	PleatTypePlain     PleatType = "민자"
	PleatTypeButterfly PleatType = "나비"
	PleatTypeTriple    PleatType = "3주름"
	PleatTypeNone      PleatType = ""
)

// PleatCountMode records whether the row's width count was typed by the
// user. A user-entered count survives recomputation until curtain type or
// pleat type changes. The flag lives on the row, not on the editing session,
// so rows are always edited independently.

type PleatCountMode string

const (
	PleatCountAuto PleatCountMode = "auto"
	PleatCountUser PleatCountMode = "user"
)

// EstimateRow is one line item of an estimate document.
//
// Derived fields (PleatAmount, Area, TotalPrice, Cost, Margin, Details) are
// recomputed by the calc package whenever a source field changes; they are
// persisted so documents stay renderable without recomputation.
//
// Area and PleatAmount are strings on the wire: an empty string means
// "not computed" and is distinct from a priced zero. Inner butterfly rows
// carry the literal fullness range "1.8~2" instead of a number.

type EstimateRow struct {
	ID          string      `json:"id"`
	Type        RowType     `json:"type"`
	ProductRef  string      `json:"productId,omitempty"` // options: owning product row id
	VendorName  string      `json:"vendorName"`
	Brand       string      `json:"brand"`
	ProductCode string      `json:"productCode"`
	ProductName string      `json:"productName"`
	ProductType ProductType `json:"productType"`

	CurtainType CurtainType `json:"curtainType"`
	PleatType   PleatType   `json:"pleatType"`

	WidthMM  float64 `json:"widthMM"`
	HeightMM float64 `json:"heightMM"`

	WidthCount      int            `json:"widthCount"`
	PleatCountMode  PleatCountMode `json:"pleatCountMode,omitempty"`
	PleatAmount     string         `json:"pleatAmount"`
	PleatMultiplier float64        `json:"pleatMultiplier,omitempty"` // inner plain fullness, default 1.4

	Area       string `json:"area"`
	AreaEdited bool   `json:"areaEdited,omitempty"` // blinds: user typed the area directly

	Quantity int `json:"quantity"`

	SalePrice       float64 `json:"salePrice"`
	PurchaseCost    float64 `json:"purchaseCost"`
	LargePlainPrice float64 `json:"largePlainPrice,omitempty"` // inner plain large-bolt override
	LargePlainCost  float64 `json:"largePlainCost,omitempty"`

	ApplyType OptionApplyType `json:"applyType,omitempty"` // options only

	TotalPrice float64 `json:"totalPrice"`
	Cost       float64 `json:"cost"`
	Margin     float64 `json:"margin"`

	Details string `json:"details"`
	Note    string `json:"note,omitempty"`
}

// IsOption reports whether the row is an option attached to a product row.
func (r EstimateRow) IsOption() bool {
	return r.Type == RowTypeOption
}

// Estimate is one quote document, identified by a human-readable serial
// number of the form E{YYYYMMDD}-{seq:3} or E{YYYYMMDD}-{seq:3}-{rev:2} for
// revisions.
//
// Storage model (DynamoDB):
//   - PK: number
//
// Duplicate documents sharing a number are reconciled by keeping the one
// with the latest SavedAt.

type Estimate struct {
	Number        string        `json:"number"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Address       string        `json:"address"`
	Memo          string        `json:"memo,omitempty"`
	Rows          []EstimateRow `json:"rows"`
	CreatedAt     time.Time     `json:"created_at"`
	SavedAt       time.Time     `json:"saved_at"`
}
