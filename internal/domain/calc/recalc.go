package calc

import (
	"errors"
	"strconv"
	"strings"

	"daon_interior/internal/domain/entities"
)

// Env carries the collaborators the recalculation pipeline reads: the
// product catalog, the runtime formula table (nil means built-ins only) and
// the document's full row list for option linkage. Env is read-only; the
// only mutable state is the row being edited.
type Env struct {
	Catalog  []entities.Product
	Formulas *FormulaTable
	Rows     []entities.EstimateRow
}

// ProductWidth resolves the fabric bolt width for a row from the catalog.
// 0 when the product is unknown; the engines then assume the standard bolt.
func (e Env) ProductWidth(row entities.EstimateRow) float64 {
	if p, ok := LookupProduct(e.Catalog, row.ProductCode, row.ProductName); ok {
		return p.WidthMM
	}
	return 0
}

// OwnerOf finds the product row an option row is attached to.
func (e Env) OwnerOf(opt entities.EstimateRow) (entities.EstimateRow, bool) {
	if opt.ProductRef == "" {
		return entities.EstimateRow{}, false
	}
	for _, r := range e.Rows {
		if r.ID == opt.ProductRef && !r.IsOption() {
			return r, true
		}
	}
	return entities.EstimateRow{}, false
}

// Field names a row attribute in a field-level edit. The values mirror the
// row's JSON keys so the HTTP layer can pass them through.
type Field string

const (
	FieldProductCode     Field = "productCode"
	FieldProductName     Field = "productName"
	FieldBrand           Field = "brand"
	FieldCurtainType     Field = "curtainType"
	FieldPleatType       Field = "pleatType"
	FieldWidthMM         Field = "widthMM"
	FieldHeightMM        Field = "heightMM"
	FieldWidthCount      Field = "widthCount"
	FieldPleatAmount     Field = "pleatAmount"
	FieldPleatMultiplier Field = "pleatMultiplier"
	FieldArea            Field = "area"
	FieldQuantity        Field = "quantity"
	FieldSalePrice       Field = "salePrice"
	FieldPurchaseCost    Field = "purchaseCost"
	FieldLargePlainPrice Field = "largePlainPrice"
	FieldLargePlainCost  Field = "largePlainCost"
	FieldNote            Field = "note"
)

var ErrUnknownField = errors.New("unknown row field")

// ApplyEdit applies a single field-level edit to a row and re-derives every
// dependent field. Values arrive as the user typed them; unparsable numbers
// degrade to zero and never interrupt the pipeline.
func ApplyEdit(row *entities.EstimateRow, field Field, value string, env Env) error {
	switch field {
	case FieldProductCode, FieldProductName:
		if field == FieldProductCode {
			row.ProductCode = value
		} else {
			row.ProductName = value
		}
		if p, ok := LookupProduct(env.Catalog, row.ProductCode, row.ProductName); ok {
			ApplyCatalogRecord(row, p)
		}

	case FieldBrand:
		row.Brand = value

	case FieldCurtainType:
		row.CurtainType = entities.CurtainType(value)
		switch row.CurtainType {
		case entities.CurtainTypeInner:
			row.PleatType = entities.PleatTypeButterfly
			row.PleatAmount = InnerButterflyFullness
		case entities.CurtainTypeOuter:
			row.PleatType = entities.PleatTypePlain
			row.PleatAmount = ""
		}
		row.WidthCount = 0
		row.PleatCountMode = entities.PleatCountAuto

	case FieldPleatType:
		row.PleatType = entities.PleatType(value)
		row.WidthCount = 0
		row.PleatCountMode = entities.PleatCountAuto

	case FieldWidthMM:
		row.WidthMM = parseNum(value)
		if row.CurtainType == entities.CurtainTypeOuter {
			// A new measurement invalidates a manually typed width count.
			row.PleatCountMode = entities.PleatCountAuto
		}

	case FieldHeightMM:
		row.HeightMM = parseNum(value)

	case FieldWidthCount:
		n, _ := strconv.Atoi(value)
		if n > 0 {
			row.WidthCount = n
			row.PleatCountMode = entities.PleatCountUser
		} else {
			row.WidthCount = 0
			row.PleatCountMode = entities.PleatCountAuto
		}

	case FieldPleatAmount:
		row.PleatAmount = value
		// Inner-plain fullness arrives through this field as a number
		// (optionally suffixed "배"); it must land on the multiplier or the
		// recomputation below regenerates PleatAmount from the old one.
		if m := parseNum(strings.TrimSuffix(strings.TrimSpace(value), "배")); m > 0 {
			row.PleatMultiplier = m
		}

	case FieldPleatMultiplier:
		m := parseNum(value)
		row.PleatMultiplier = m
		if m > 0 {
			row.PleatAmount = strconv.FormatFloat(m, 'f', -1, 64)
		}

	case FieldArea:
		row.Area = value
		row.AreaEdited = value != ""

	case FieldQuantity:
		row.Quantity, _ = strconv.Atoi(value)

	case FieldSalePrice:
		row.SalePrice = parseNum(value)
	case FieldPurchaseCost:
		row.PurchaseCost = parseNum(value)
	case FieldLargePlainPrice:
		row.LargePlainPrice = parseNum(value)
	case FieldLargePlainCost:
		row.LargePlainCost = parseNum(value)

	case FieldNote:
		row.Note = value

	default:
		return ErrUnknownField
	}

	Recalculate(row, env)
	return nil
}

// Recalculate re-derives every dependent field of a row from its committed
// source fields: pleat count and fullness, then area, then totals, then
// margin and the details summary. This is the authoritative pipeline run on
// save; it is idempotent, so per-keystroke previews can reuse it freely.
func Recalculate(row *entities.EstimateRow, env Env) {
	if row.IsOption() {
		recalculateOption(row, env)
		return
	}

	productWidth := env.ProductWidth(*row)

	if row.ProductType == entities.ProductTypeCurtain {
		switch row.CurtainType {
		case entities.CurtainTypeOuter:
			if row.PleatCountMode != entities.PleatCountUser {
				row.WidthCount = recommendedCount(*row, productWidth, env)
			}
			row.PleatAmount = PleatAmount(row.WidthMM, productWidth, row.PleatType, row.CurtainType, row.WidthCount)
		case entities.CurtainTypeInner:
			row.WidthCount = 0
			switch row.PleatType {
			case entities.PleatTypeButterfly:
				row.PleatAmount = InnerButterflyFullness
			case entities.PleatTypePlain:
				m := row.PleatMultiplier
				if m <= 0 {
					m = defaultPlainMultiplier
				}
				row.PleatAmount = strconv.FormatFloat(m, 'f', -1, 64)
			}
		}
	}

	switch {
	case row.ProductType == entities.ProductTypeCurtain && row.CurtainType == entities.CurtainTypeOuter:
		// Outer curtains are priced per fabric width and carry no area.
		row.Area = ""
	case row.ProductType == entities.ProductTypeBlind && row.AreaEdited:
		// Keep the user's manual area.
	default:
		row.Area = Area(AreaInput{
			ProductType:      row.ProductType,
			CurtainType:      row.CurtainType,
			PleatType:        row.PleatType,
			WidthMM:          row.WidthMM,
			HeightMM:         row.HeightMM,
			PleatAmount:      row.PleatAmount,
			CustomMultiplier: row.PleatMultiplier,
			ProductCode:      row.ProductCode,
			ProductName:      row.ProductName,
		}, env.Catalog)
	}

	areaNum := parseNum(row.Area)
	if total, ok := TotalPrice(*row, areaNum); ok {
		row.TotalPrice = total
	} else {
		row.TotalPrice = 0
	}
	if cost, ok := PurchaseTotal(*row, areaNum); ok {
		row.Cost = cost
	} else {
		row.Cost = 0
	}
	row.Margin = Margin(row.TotalPrice, row.Cost)

	row.Details = Details(*row, env.Rows)
}

// recommendedCount derives the auto width count for an outer curtain. The
// runtime formula table is consulted first so user-edited formulas take
// effect immediately; the built-in constants are the fallback.
func recommendedCount(row entities.EstimateRow, productWidth float64, env Env) int {
	if row.WidthMM <= 0 {
		return 0
	}
	if env.Formulas != nil {
		key := FormulaKey(row.CurtainType, row.PleatType, SizeClass(productWidth))
		if raw, ok := env.Formulas.Evaluate(key, row.WidthMM, effectiveBoltWidth(productWidth)); ok && raw > 0 {
			return roundPleat(raw)
		}
	}
	if n, ok := PleatCount(row.WidthMM, productWidth, row.PleatType, row.CurtainType); ok {
		return n
	}
	return 0
}

func recalculateOption(row *entities.EstimateRow, env Env) {
	owner, ok := env.OwnerOf(*row)
	if !ok {
		row.TotalPrice, row.Cost, row.Margin = 0, 0, 0
		return
	}
	area := parseNum(owner.Area)
	if total, ok := OptionTotal(*row, owner, area); ok {
		row.TotalPrice = total
	} else {
		row.TotalPrice = 0
	}
	if cost, ok := OptionCost(*row, owner, area); ok {
		row.Cost = cost
	} else {
		row.Cost = 0
	}
	row.Margin = Margin(row.TotalPrice, row.Cost)
}

// NeedsUpdate reports whether a recomputation actually changed the row.
// Shallow equality is enough: EstimateRow holds no reference types.
func NeedsUpdate(before, after entities.EstimateRow) bool {
	return before != after
}

// NewEmptyRow creates a blank product row: numeric fields zero, strings
// empty.
func NewEmptyRow(id string) entities.EstimateRow {
	return entities.EstimateRow{ID: id, Type: entities.RowTypeProduct, PleatCountMode: entities.PleatCountAuto}
}

// NewRowFromProduct creates a row pre-filled from a catalog record.
func NewRowFromProduct(id string, p entities.Product) entities.EstimateRow {
	row := NewEmptyRow(id)
	ApplyCatalogRecord(&row, p)
	return row
}

// ApplyCatalogRecord overwrites a row's vendor, brand, code, name, category
// and prices from a catalog record, and seeds curtain/pleat defaults from
// the fabric's inside/outside flag. The width-count override is cleared: a
// different fabric invalidates any manual count.
func ApplyCatalogRecord(row *entities.EstimateRow, p entities.Product) {
	row.VendorName = p.VendorName
	row.Brand = p.Brand
	row.ProductCode = p.Code
	row.ProductName = p.Name
	row.ProductType = p.Category
	row.SalePrice = p.SalePrice
	row.PurchaseCost = p.PurchaseCost
	row.LargePlainPrice = p.LargePlainPrice
	row.LargePlainCost = p.LargePlainCost
	row.Details = p.Details
	row.WidthCount = 0
	row.PleatCountMode = entities.PleatCountAuto

	if p.Category == entities.ProductTypeCurtain {
		switch p.InsideOutside {
		case entities.InsideOutsideInner:
			row.CurtainType = entities.CurtainTypeInner
			row.PleatType = entities.PleatTypeButterfly
			row.PleatAmount = InnerButterflyFullness
		case entities.InsideOutsideOuter:
			row.CurtainType = entities.CurtainTypeOuter
			row.PleatType = entities.PleatTypePlain
			row.PleatAmount = ""
		}
	} else {
		row.CurtainType = entities.CurtainTypeNone
		row.PleatType = entities.PleatTypeNone
		row.PleatAmount = ""
	}
}

func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
