package calc

import (
	"testing"

	"daon_interior/internal/domain/entities"
)

func TestTotalPrice_PremiumBrandIgnoresEverythingElse(t *testing.T) {
	row := entities.EstimateRow{
		Brand:     "헌터더글라스",
		SalePrice: 300000,
		Quantity:  2,
	}
	total, ok := TotalPrice(row, 0)
	if !ok || total != 600000 {
		t.Fatalf("total = %v ok=%v, want 600000", total, ok)
	}
	cost, ok := PurchaseTotal(row, 0)
	if !ok || cost != 163636 { // round(300000*0.6/1.1)
		t.Fatalf("cost = %v ok=%v, want 163636", cost, ok)
	}

	// Curtain fields and area never influence the premium path.
	row.CurtainType = entities.CurtainTypeOuter
	row.PleatType = entities.PleatTypeButterfly
	row.ProductType = entities.ProductTypeCurtain
	row.WidthCount = 7
	total2, _ := TotalPrice(row, 99)
	cost2, _ := PurchaseTotal(row, 99)
	if total2 != total || cost2 != cost {
		t.Fatalf("premium path must ignore curtain/pleat/area: %v/%v vs %v/%v", total2, cost2, total, cost)
	}
}

func TestTotalPrice_PremiumBrandCaseInsensitive(t *testing.T) {
	row := entities.EstimateRow{Brand: " 헌터더글라스 ", SalePrice: 100000, Quantity: 1}
	if _, ok := TotalPrice(row, 0); !ok {
		t.Fatalf("trimmed brand should match")
	}
}

func TestTotalPrice_OuterCurtainPerWidth(t *testing.T) {
	row := entities.EstimateRow{
		ProductType:  entities.ProductTypeCurtain,
		CurtainType:  entities.CurtainTypeOuter,
		PleatType:    entities.PleatTypePlain,
		SalePrice:    25000,
		PurchaseCost: 15000,
		WidthCount:   3,
	}
	total, ok := TotalPrice(row, 0)
	if !ok || total != 75000 {
		t.Fatalf("total = %v ok=%v, want 75000", total, ok)
	}
	cost, ok := PurchaseTotal(row, 0)
	if !ok || cost != 45000 {
		t.Fatalf("cost = %v ok=%v, want 45000", cost, ok)
	}

	row.WidthCount = 0
	if _, ok := TotalPrice(row, 0); ok {
		t.Fatalf("zero width count must not price")
	}
}

func TestTotalPrice_InnerPlainLargeBoltFallback(t *testing.T) {
	row := entities.EstimateRow{
		ProductType:  entities.ProductTypeCurtain,
		CurtainType:  entities.CurtainTypeInner,
		PleatType:    entities.PleatTypePlain,
		SalePrice:    18000,
		PurchaseCost: 9000,
	}

	// No override: 63% of the unit price applies.
	total, ok := TotalPrice(row, 2.0)
	if !ok || total != 22680 { // round(18000*0.63*2)
		t.Fatalf("total = %v ok=%v, want 22680", total, ok)
	}
	cost, ok := PurchaseTotal(row, 2.0)
	if !ok || cost != 11340 { // round(9000*0.63*2)
		t.Fatalf("cost = %v ok=%v, want 11340", cost, ok)
	}

	// Explicit large-bolt unit prices win over the ratio.
	row.LargePlainPrice = 12000
	row.LargePlainCost = 6000
	total, _ = TotalPrice(row, 2.0)
	cost, _ = PurchaseTotal(row, 2.0)
	if total != 24000 || cost != 12000 {
		t.Fatalf("override total/cost = %v/%v, want 24000/12000", total, cost)
	}
}

func TestTotalPrice_InnerButterflyAndBlindByArea(t *testing.T) {
	butterfly := entities.EstimateRow{
		ProductType:  entities.ProductTypeCurtain,
		CurtainType:  entities.CurtainTypeInner,
		PleatType:    entities.PleatTypeButterfly,
		SalePrice:    18000,
		PurchaseCost: 9000,
	}
	total, ok := TotalPrice(butterfly, 2.4)
	if !ok || total != 43200 {
		t.Fatalf("butterfly total = %v ok=%v, want 43200", total, ok)
	}

	blind := entities.EstimateRow{
		ProductType:  entities.ProductTypeBlind,
		SalePrice:    40000,
		PurchaseCost: 22000,
	}
	total, ok = TotalPrice(blind, 3.0)
	if !ok || total != 120000 {
		t.Fatalf("blind total = %v ok=%v, want 120000", total, ok)
	}
	cost, ok := PurchaseTotal(blind, 3.0)
	if !ok || cost != 66000 {
		t.Fatalf("blind cost = %v ok=%v, want 66000", cost, ok)
	}

	if _, ok := TotalPrice(blind, 0); ok {
		t.Fatalf("zero area must not price")
	}
}

func TestTotalPrice_FallbackKeepsStoredTotals(t *testing.T) {
	row := entities.EstimateRow{
		ProductType: entities.ProductTypeCurtain,
		PleatType:   entities.PleatTypeTriple,
		TotalPrice:  55000,
		Cost:        30000,
	}
	total, ok := TotalPrice(row, 1.0)
	if !ok || total != 55000 {
		t.Fatalf("fallback total = %v ok=%v, want stored 55000", total, ok)
	}
	cost, ok := PurchaseTotal(row, 1.0)
	if !ok || cost != 30000 {
		t.Fatalf("fallback cost = %v ok=%v, want stored 30000", cost, ok)
	}
}

func TestTotalPrice_AbsentPriceIsEmptyNotZero(t *testing.T) {
	row := entities.EstimateRow{
		ProductType: entities.ProductTypeCurtain,
		CurtainType: entities.CurtainTypeOuter,
		PleatType:   entities.PleatTypePlain,
		WidthCount:  3,
	}
	if _, ok := TotalPrice(row, 0); ok {
		t.Fatalf("absent price must report not ok")
	}

	premium := entities.EstimateRow{Brand: "헌터더글라스", SalePrice: 100000}
	if _, ok := TotalPrice(premium, 0); ok {
		t.Fatalf("absent quantity must report not ok")
	}
}

func TestMargin(t *testing.T) {
	// round(totalPrice/1.1) - cost, VAT backed out of the sale total.
	nearlyEqual(t, "margin", Margin(110000, 60000), 40000)
	nearlyEqual(t, "margin rounding", Margin(100000, 50000), 40909) // round(90909.09) - 50000
	nearlyEqual(t, "zero", Margin(0, 0), 0)
}
